package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/internal/api/handler"
	"github.com/vfg2006/inventory-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/scheduler"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dispatching"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/preferences"
	"github.com/vfg2006/inventory-dashboard-api/internal/workspace"
	"github.com/vfg2006/inventory-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
	// cancela o contexto base das requisições; encerra os streams SSE no desligamento
	cancelStreams context.CancelFunc
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	registry *workspace.Registry,
	dashboardService *dashboarding.Service,
	preferencesService *preferences.Service,
	notificationService *dispatching.NotificationService,
	alertService *dispatching.AlertService,
	uploadService *dispatching.UploadService,
	lowStockAlertsService *scheduler.LowStockAlertsService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		LowStockAlertsService: lowStockAlertsService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(dashboardService)...),
		router.WithRoutes(handler.Authentication(authenticator, registry)...),
		router.WithRoutes(handler.Preferences(preferencesService)...),
		router.WithRoutes(handler.Views(dashboardService)...),
		router.WithRoutes(handler.Notifications(notificationService)...),
		router.WithRoutes(handler.Dispatch(alertService, uploadService, config.Backend.MaxUploadBytes)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)
	logrus.Debugf("%d rotas registradas", len(rt.Routes()))

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator, registry),
	}

	handler := alice.New(middlewares...).Then(rt)

	baseCtx, cancel := context.WithCancel(context.Background())

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
			BaseContext: func(net.Listener) context.Context {
				return baseCtx
			},
		},
		cancelStreams: cancel,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Encerrando streams abertos")
	s.cancelStreams()

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
