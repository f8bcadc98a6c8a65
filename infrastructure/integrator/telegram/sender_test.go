package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
)

type fakeTelegram struct {
	mu   sync.Mutex
	sent []map[string]string
}

func (f *fakeTelegram) handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case strings.HasSuffix(r.URL.Path, "/getMe"):
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":42,"is_bot":true,"first_name":"Estoque","username":"estoque_bot"}}`))
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		_ = r.ParseForm()
		f.mu.Lock()
		f.sent = append(f.sent, map[string]string{
			"chat_id": r.PostForm.Get("chat_id"),
			"text":    r.PostForm.Get("text"),
		})
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":1,"type":"private"},"text":"ok"}}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestSender(t *testing.T, chatID int64) (*Sender, *fakeTelegram) {
	t.Helper()
	fake := &fakeTelegram{}
	server := httptest.NewServer(http.HandlerFunc(fake.handler))
	t.Cleanup(server.Close)

	sender, err := NewSender(config.Alerts{TelegramToken: "token", TelegramChatID: chatID}, server.URL+"/bot%s/%s", server.Client())
	require.NoError(t, err)
	return sender, fake
}

func TestSender_SendAlert(t *testing.T) {
	tests := []struct {
		name        string
		defaultChat int64
		target      string
		wantChat    string
		wantErr     error
	}{
		{name: "chat id explícito", defaultChat: 99, target: "tg:12345", wantChat: "12345"},
		{name: "chat id de grupo", defaultChat: 99, target: "tg:-100987", wantChat: "-100987"},
		{name: "target não numérico usa chat padrão", defaultChat: 99, target: "+5511999999999", wantChat: "99"},
		{name: "telefone sem prefixo usa chat padrão", defaultChat: 99, target: "5511999999999", wantChat: "99"},
		{name: "chat id inválido usa chat padrão", defaultChat: 99, target: "tg:abc", wantChat: "99"},
		{name: "sem chat configurado", target: "", wantErr: ErrMissingChat},
		{name: "telefone sem chat configurado", target: "5511999999999", wantErr: ErrMissingChat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, fake := newTestSender(t, tt.defaultChat)

			err := sender.SendAlert(context.Background(), tt.target, "Estoque baixo: Wheat")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, fake.sent)
				return
			}

			require.NoError(t, err)
			require.Len(t, fake.sent, 1)
			assert.Equal(t, tt.wantChat, fake.sent[0]["chat_id"])
			assert.Equal(t, "Estoque baixo: Wheat", fake.sent[0]["text"])
		})
	}
}

func TestNewSender_MissingToken(t *testing.T) {
	_, err := NewSender(config.Alerts{}, "", nil)
	assert.Error(t, err)
}
