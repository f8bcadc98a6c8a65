package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dispatching"
	"github.com/vfg2006/inventory-dashboard-api/internal/workspace"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-dashboard-api/pkg/middleware"
)

type NotificationRequest struct {
	Details string `json:"details"`
}

func notificationParams(r *http.Request, ws *workspace.Workspace) dashboarding.ViewParams {
	return dashboarding.ViewParams{
		Search:  r.URL.Query().Get("search"),
		History: ws.History,
	}
}

func requireWorkspace(w http.ResponseWriter, r *http.Request) (*workspace.Workspace, bool) {
	ws, ok := middleware.WorkspaceFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
	}
	return ws, ok
}

// ListNotifications devolve a lista mais recente primeiro, com busca opcional
func ListNotifications(service *dashboarding.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := requireWorkspace(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, service.Notifications(notificationParams(r, ws)))
	}
}

func ExportNotifications(service *dashboarding.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := requireWorkspace(w, r)
		if !ok {
			return
		}

		body, err := service.ExportNotificationsCSV(notificationParams(r, ws))
		if err != nil {
			handleError(w, err, "Erro ao exportar notificações")
			return
		}
		writeCSV(w, "notifications", body)
	}
}

func CreateNotification(service *dispatching.NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateNotification")

		ws, ok := requireWorkspace(w, r)
		if !ok {
			return
		}

		var req NotificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if strings.TrimSpace(req.Details) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Detalhes da notificação são obrigatórios", nil)
			return
		}

		entry := service.NewEntry(ws.Session.CurrentUser(), req.Details)
		if err := service.AppendNotification(r.Context(), entry); err != nil {
			handleError(w, err, "Erro ao registrar notificação")
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	}
}

// DeleteNotification remove pela posição exibida (0 é a mais recente)
func DeleteNotification(service *dispatching.NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteNotification")

		ws, ok := requireWorkspace(w, r)
		if !ok {
			return
		}

		raw := httprouter.ParamsFromContext(r.Context()).ByName("index")
		index, err := strconv.Atoi(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Índice da notificação inválido", nil)
			return
		}

		if err := service.DeleteNotification(r.Context(), ws.History, index); err != nil {
			handleError(w, err, "Erro ao remover notificação")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ClearNotifications(service *dispatching.NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ClearNotifications")

		ws, ok := requireWorkspace(w, r)
		if !ok {
			return
		}

		if err := service.ClearNotifications(r.Context(), ws.History); err != nil {
			handleError(w, err, "Erro ao limpar notificações")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func UndoNotifications(service *dispatching.NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UndoNotifications")

		ws, ok := requireWorkspace(w, r)
		if !ok {
			return
		}

		if err := service.UndoNotifications(r.Context(), ws.History); err != nil {
			handleError(w, err, "Erro ao desfazer alteração nas notificações")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
