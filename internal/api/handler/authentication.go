package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/inventory-dashboard-api/internal/workspace"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-dashboard-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// Logout encerra a sessão e descarta o workspace dela. Streams abertos recebem o fim da sessão.
func Logout(service authenticating.Authenticator, registry *workspace.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Logout")

		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		service.SignOut(userClaims.SessionID)
		registry.End(userClaims.SessionID)

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMe retorna a identidade atual da sessão
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := middleware.WorkspaceFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		identity := ws.Session.CurrentUser()
		if identity == nil {
			apiErrors.WriteError(w, apiErrors.ErrSessionEnded, "Sessão encerrada", nil)
			return
		}

		writeJSON(w, http.StatusOK, identity)
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)

	case errors.Is(err, authenticating.ErrEmailNotAuthorized):
		apiErrors.WriteError(w, apiErrors.ErrEmailNotAuthorized, "Acesso negado: seu email não está autorizado", nil)

	default:
		logrus.WithError(err).Error("Erro interno ao realizar login")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}
