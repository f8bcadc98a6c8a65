// Package telegram envia alertas de estoque por um bot do Telegram
package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
)

var ErrMissingChat = errors.New("nenhum chat do Telegram configurado para o alerta")

// ChatTargetPrefix marca o target como chat id explícito ("tg:12345", "tg:-100987")
const ChatTargetPrefix = "tg:"

type Sender struct {
	bot           *tgbotapi.BotAPI
	defaultChatID int64
}

// NewSender valida o token chamando getMe. apiEndpoint vazio usa a API pública.
func NewSender(cfg config.Alerts, apiEndpoint string, httpClient *http.Client) (*Sender, error) {
	if cfg.TelegramToken == "" {
		return nil, errors.New("token do bot do Telegram não configurado")
	}
	if apiEndpoint == "" {
		apiEndpoint = tgbotapi.APIEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.TelegramToken, apiEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar o bot do Telegram: %w", err)
	}

	logrus.Infof("Bot do Telegram autorizado: @%s", bot.Self.UserName)

	return &Sender{
		bot:           bot,
		defaultChatID: cfg.TelegramChatID,
	}, nil
}

// chatFor só aceita chat id com o prefixo tg:. Telefones e qualquer outro target vão para o chat padrão.
func (s *Sender) chatFor(target string) int64 {
	raw, ok := strings.CutPrefix(strings.TrimSpace(target), ChatTargetPrefix)
	if !ok {
		return s.defaultChatID
	}

	chatID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		logrus.WithField("target", target).Warn("Chat id do Telegram inválido, usando chat padrão")
		return s.defaultChatID
	}
	return chatID
}

// SendAlert envia ao chat indicado por "tg:<id>" ou, para qualquer outro target, ao chat configurado
func (s *Sender) SendAlert(ctx context.Context, target, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	chatID := s.chatFor(target)
	if chatID == 0 {
		return ErrMissingChat
	}

	msg := tgbotapi.NewMessage(chatID, message)
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("erro ao enviar mensagem para o Telegram: %w", err)
	}
	return nil
}
