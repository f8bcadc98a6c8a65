// Package scheduler contém os serviços agendados do painel
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/views"
)

const systemUser = "Sistema"

//go:generate mockgen -source=low_stock_alerts.go -destination=mocks/low_stock_alerts_mock.go -package=mocks

// LowStockSource devolve as categorias abaixo do limite no snapshot atual do painel
type LowStockSource interface {
	LowStock(threshold float64) []domain.CategoryEntry
}

type StockNotifier interface {
	CheckAndNotify(ctx context.Context, phone string) (map[string]any, error)
}

type NotificationAppender interface {
	AppendNotification(ctx context.Context, entry domain.Notification) error
}

type LowStockAlertsConfig struct {
	CronSchedule string
	Threshold    float64
	PhoneNumber  string
	SyncEnabled  bool
}

type LowStockAlertsService struct {
	scheduler     *gocron.Scheduler
	source        LowStockSource
	notifier      StockNotifier
	notifications NotificationAppender
	config        LowStockAlertsConfig
	now           func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastLowStockCount   int
	lastError           string
}

func NewLowStockAlertsService(
	source LowStockSource,
	notifier StockNotifier,
	notifications NotificationAppender,
	cfg *config.Config,
) *LowStockAlertsService {
	alertsConfig := LowStockAlertsConfig{
		CronSchedule: cfg.LowStockAlerts.CronSchedule, // Default: 8h da manhã todos os dias
		Threshold:    cfg.LowStockAlerts.Threshold,
		PhoneNumber:  cfg.LowStockAlerts.PhoneNumber,
		SyncEnabled:  cfg.LowStockAlerts.Enabled, // Default: desabilitado
	}
	if alertsConfig.Threshold <= 0 {
		alertsConfig.Threshold = views.DefaultLowStockThreshold
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": alertsConfig.CronSchedule,
		"threshold":     alertsConfig.Threshold,
	}).Info("Configuração do agendador de alertas de estoque baixo carregada")

	return &LowStockAlertsService{
		scheduler:     gocron.NewScheduler(time.Local),
		source:        source,
		notifier:      notifier,
		notifications: notifications,
		config:        alertsConfig,
		now:           time.Now,
	}
}

func (s *LowStockAlertsService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de alertas de estoque baixo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de alertas de estoque baixo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.CheckLowStock(ctx); err != nil {
			logrus.WithError(err).Error("Erro na verificação de estoque baixo")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar alertas de estoque baixo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de alertas de estoque baixo")
		s.scheduler.Stop()
	}()

	return nil
}

// CheckLowStock verifica o painel e, havendo itens abaixo do limite, avisa o backend
// e registra uma notificação. Devolve os itens encontrados.
func (s *LowStockAlertsService) CheckLowStock(ctx context.Context) ([]domain.CategoryEntry, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Verificação de estoque baixo já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	lowStock, err := s.check(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastLowStockCount = len(lowStock)
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	return lowStock, err
}

func (s *LowStockAlertsService) check(ctx context.Context) ([]domain.CategoryEntry, error) {
	lowStock := s.source.LowStock(s.config.Threshold)
	if len(lowStock) == 0 {
		logrus.Info("Nenhum item com estoque baixo")
		return lowStock, nil
	}

	logrus.WithField("items", len(lowStock)).Info("Itens com estoque baixo encontrados")

	if s.config.PhoneNumber != "" {
		if _, err := s.notifier.CheckAndNotify(ctx, s.config.PhoneNumber); err != nil {
			logrus.WithError(err).Error("Erro ao pedir aviso de estoque baixo ao backend")
		}
	}

	entry := domain.Notification{
		Details: lowStockMessage(lowStock),
		Date:    s.now().Format(time.DateOnly),
		User:    systemUser,
	}
	if err := s.notifications.AppendNotification(ctx, entry); err != nil {
		return lowStock, fmt.Errorf("erro ao registrar notificação de estoque baixo: %w", err)
	}

	return lowStock, nil
}

func lowStockMessage(entries []domain.CategoryEntry) string {
	items := make([]string, 0, len(entries))
	for _, entry := range entries {
		items = append(items, fmt.Sprintf("%s (%g)", entry.Name, *entry.Quantity))
	}
	return "Estoque baixo: " + strings.Join(items, ", ")
}

// TriggerManualSync inicia manualmente uma verificação de estoque baixo
func (s *LowStockAlertsService) TriggerManualSync() {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Verificação de estoque baixo já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando verificação manual de estoque baixo")
	go func() {
		if _, err := s.CheckLowStock(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na verificação manual de estoque baixo")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *LowStockAlertsService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"threshold":              s.config.Threshold,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_low_stock_count":   s.lastLowStockCount,
		"last_error":             s.lastError,
	}
}
