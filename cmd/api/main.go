package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/connect"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/seed"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/integrator/backend/backendclient"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/integrator/telegram"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/inventory-dashboard-api/internal/api"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/realtime"
	"github.com/vfg2006/inventory-dashboard-api/internal/scheduler"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dispatching"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/preferences"
	"github.com/vfg2006/inventory-dashboard-api/internal/workspace"
	"github.com/vfg2006/inventory-dashboard-api/pkg/log"
)

const (
	alertsChannelSMS      = "sms"
	alertsChannelTelegram = "telegram"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Run(ctx, pgConn, cfg.DocStore.NotifyChannel); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	store := docStore(ctx, cfg, pgConn)
	defer store.Close()

	bridge := realtime.NewBridge(store)

	dashboardService := dashboarding.NewService(bridge, cfg.Views)
	if err := dashboardService.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao assinar os documentos do painel")
	}
	defer dashboardService.Close()

	userRepo := repository.NewUserRepository(pgConn)
	authenticator := authenticating.NewService(userRepo, cfg)

	registry := workspace.NewRegistry(authenticator.Provider)
	defer registry.Close()

	sessionSweep := scheduler.NewSessionSweepService(authenticator, registry, cfg.Auth.SessionSweepInterval)
	if err := sessionSweep.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a limpeza de sessões vencidas")
	}

	backendClient := backendclient.NewClient(cfg.Backend)

	sender, channel := alertSender(cfg, backendClient)
	alertService := dispatching.NewAlertService(sender, channel, cfg.Backend.Timeout)
	defer alertService.Wait()

	uploadService := dispatching.NewUploadService(backendClient, backendClient, cfg.Backend.MaxUploadBytes)
	notificationService := dispatching.NewNotificationService(store)
	preferencesService := preferences.NewService(store)

	lowStockAlertsService := scheduler.NewLowStockAlertsService(
		dashboardService,    // Implementa LowStockSource
		backendClient,       // Implementa StockNotifier
		notificationService, // Implementa NotificationAppender
		cfg,
	)

	if err := lowStockAlertsService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de alertas de estoque baixo")
	} else {
		logrus.Info("Agendador de alertas de estoque baixo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		registry,
		dashboardService,
		preferencesService,
		notificationService,
		alertService,
		uploadService,
		lowStockAlertsService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource faz o .env ao lado do main ser encontrado em desenvolvimento
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

func docStore(ctx context.Context, cfg *config.Config, conn *postgres.Connection) docstore.Store {
	store, err := connect.Open(ctx, cfg.DocStore, conn)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o document store")
	}

	if cfg.DocStore.SeedDemoData {
		if err := seed.Demo(ctx, store); err != nil {
			logrus.WithError(err).Error("Erro ao gravar documentos de demonstração")
		}
	}
	return store
}

// alertSender escolhe o canal dos alertas; sem token do Telegram cai para SMS
func alertSender(cfg *config.Config, backendClient *backendclient.Client) (dispatching.AlertSender, string) {
	if cfg.Alerts.Channel != alertsChannelTelegram {
		return backendClient, alertsChannelSMS
	}

	sender, err := telegram.NewSender(cfg.Alerts, "", nil)
	if err != nil {
		logrus.WithError(err).Warn("Canal Telegram indisponível, usando SMS")
		return backendClient, alertsChannelSMS
	}
	return sender, alertsChannelTelegram
}
