package dispatching

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-dashboard-api/pkg/utils"
)

const defaultAlertTimeout = 15 * time.Second

// AlertService dispara alertas sem aguardar o resultado. Falhas ficam só no log.
type AlertService struct {
	sender  AlertSender
	channel string
	timeout time.Duration
	now     func() time.Time

	inFlight sync.WaitGroup
}

func NewAlertService(sender AlertSender, channel string, timeout time.Duration) *AlertService {
	if timeout <= 0 {
		timeout = defaultAlertTimeout
	}
	return &AlertService{
		sender:  sender,
		channel: channel,
		timeout: timeout,
		now:     time.Now,
	}
}

// SendAlert valida, enfileira o envio e devolve a confirmação local.
// A confirmação não significa entrega.
func (s *AlertService) SendAlert(target, message string) (*domain.AlertAck, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, NewDispatchError(ErrMissingTarget, apiErrors.ErrMissingRequiredData, "")
	}
	if strings.TrimSpace(message) == "" {
		return nil, NewDispatchError(ErrEmptyMessage, apiErrors.ErrMissingRequiredData, "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewDispatchError(err, apiErrors.ErrInternalServer, "erro ao gerar o ID do alerta")
	}

	ack := &domain.AlertAck{
		ID:       id,
		Target:   target,
		Channel:  s.channel,
		QueuedAt: s.now(),
	}

	s.inFlight.Add(1)
	go func() {
		defer s.inFlight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		logger := logrus.WithFields(logrus.Fields{
			"alert_id": ack.ID,
			"channel":  ack.Channel,
		})
		if err := s.sender.SendAlert(ctx, target, message); err != nil {
			logger.WithError(err).Warn("Falha ao enviar alerta")
			return
		}
		logger.Debug("Alerta enviado")
	}()

	return ack, nil
}

// Wait bloqueia até os envios em andamento terminarem; usado no desligamento
func (s *AlertService) Wait() {
	s.inFlight.Wait()
}
