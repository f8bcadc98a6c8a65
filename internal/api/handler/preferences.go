package handler

import (
	"net/http"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/preferences"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-dashboard-api/pkg/middleware"
)

// currentUID devolve o uid da identidade da sessão, escrevendo o erro quando não há
func currentUID(w http.ResponseWriter, r *http.Request) (string, bool) {
	ws, ok := middleware.WorkspaceFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}

	identity := ws.Session.CurrentUser()
	if identity == nil {
		apiErrors.WriteError(w, apiErrors.ErrSessionEnded, "Sessão encerrada", nil)
		return "", false
	}
	return identity.UID, true
}

func GetPreferences(service *preferences.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := currentUID(w, r)
		if !ok {
			return
		}

		prefs, err := service.Get(r.Context(), uid)
		if err != nil {
			handleError(w, err, "Erro ao carregar preferências")
			return
		}
		writeJSON(w, http.StatusOK, prefs)
	}
}

func SavePreferences(service *preferences.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := currentUID(w, r)
		if !ok {
			return
		}

		var prefs domain.Preferences
		if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.Save(r.Context(), uid, prefs); err != nil {
			handleError(w, err, "Erro ao salvar preferências")
			return
		}
		writeJSON(w, http.StatusOK, prefs)
	}
}

func ToggleSidebar(service *preferences.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := currentUID(w, r)
		if !ok {
			return
		}

		prefs, err := service.ToggleSidebar(r.Context(), uid)
		if err != nil {
			handleError(w, err, "Erro ao alternar a sidebar")
			return
		}
		writeJSON(w, http.StatusOK, prefs)
	}
}
