package handler

import (
	"net/http"

	"github.com/vfg2006/inventory-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dispatching"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/preferences"
	"github.com/vfg2006/inventory-dashboard-api/internal/workspace"
	"github.com/vfg2006/inventory-dashboard-api/pkg/middleware"
)

var (
	authenticated = []func(http.Handler) http.Handler{middleware.Authenticated()}
	adminOnly     = []func(http.Handler) http.Handler{middleware.AdminOnly()}
)

func Healthcheck(checker ReadinessChecker) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checker),
		},
	}
}

func Authentication(service authenticating.Authenticator, registry *workspace.Registry) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/logout",
			Method:      http.MethodPost,
			Handler:     Logout(service, registry),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: authenticated,
		},
	}
}

func Preferences(service *preferences.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/preferences",
			Method:      http.MethodGet,
			Handler:     GetPreferences(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/me/preferences",
			Method:      http.MethodPut,
			Handler:     SavePreferences(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/me/preferences/sidebar/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleSidebar(service),
			Middlewares: authenticated,
		},
	}
}

func Views(service *dashboarding.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     GetSales(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/sales/orders/export.csv",
			Method:      http.MethodGet,
			Handler:     ExportOrders(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/sales/orders/:id",
			Method:      http.MethodPut,
			Handler:     UpdateOrder(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/sales/orders/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteOrder(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/notifications",
			Method:      http.MethodGet,
			Handler:     ListNotifications(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/notifications/export.csv",
			Method:      http.MethodGet,
			Handler:     ExportNotifications(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/stream/:area",
			Method:      http.MethodGet,
			Handler:     StreamArea(service),
			Middlewares: authenticated,
		},
	}
}

func Notifications(service *dispatching.NotificationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/notifications",
			Method:      http.MethodPost,
			Handler:     CreateNotification(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/notifications",
			Method:      http.MethodDelete,
			Handler:     ClearNotifications(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/notifications/:index",
			Method:      http.MethodDelete,
			Handler:     DeleteNotification(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/notifications/undo",
			Method:      http.MethodPost,
			Handler:     UndoNotifications(service),
			Middlewares: authenticated,
		},
	}
}

func Dispatch(alerts *dispatching.AlertService, uploads *dispatching.UploadService, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/alerts/sms",
			Method:      http.MethodPost,
			Handler:     SendAlert(alerts),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/inventory/check-and-notify",
			Method:      http.MethodPost,
			Handler:     CheckAndNotify(uploads),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/admin/upload",
			Method:      http.MethodPost,
			Handler:     AdminUpload(uploads, maxUploadBytes),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/predict",
			Method:      http.MethodPost,
			Handler:     TrainAndPredict(uploads, maxUploadBytes),
			Middlewares: adminOnly,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly,
		},
	}
}
