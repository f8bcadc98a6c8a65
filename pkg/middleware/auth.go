package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/inventory-dashboard-api/internal/workspace"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser      contextKey = "user"
	ContextKeyWorkspace contextKey = "workspace"
	ContextKeyToken     contextKey = "token"
)

// accessTokenParam permite autenticar o stream SSE, já que o EventSource não envia headers
const accessTokenParam = "access_token"

var publicPaths = map[string]bool{
	"/healthcheck": true,
	"/v1/login":    true,
}

// AuthMiddleware valida o token e coloca claims e workspace da sessão no contexto
func AuthMiddleware(authService authenticating.Authenticator, registry *workspace.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := bearerToken(r)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de acesso obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				writeTokenError(w, err)
				return
			}

			ws, err := registry.Get(claims.SessionID)
			if err != nil {
				logrus.WithError(err).Warn("Workspace indisponível")
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "Servidor em desligamento", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), claims, ws, tokenString)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return "", false
		}
		return tokenString, true
	}

	if tokenString := r.URL.Query().Get(accessTokenParam); tokenString != "" {
		return tokenString, true
	}
	return "", false
}

func writeTokenError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authenticating.ErrExpiredToken):
		apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado", nil)
	case errors.Is(err, authenticating.ErrSessionEnded):
		apiErrors.WriteError(w, apiErrors.ErrSessionEnded, "Sessão encerrada", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
	}
}

// WithSession monta o contexto autenticado de uma requisição
func WithSession(ctx context.Context, claims *domain.Claims, ws *workspace.Workspace, token string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyUser, claims)
	ctx = context.WithValue(ctx, ContextKeyWorkspace, ws)
	return context.WithValue(ctx, ContextKeyToken, token)
}

func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

func WorkspaceFromContext(ctx context.Context) (*workspace.Workspace, bool) {
	ws, ok := ctx.Value(ContextKeyWorkspace).(*workspace.Workspace)
	return ws, ok && ws != nil
}

// TokenFromContext devolve o token da requisição, repassado ao backend nos uploads
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(ContextKeyToken).(string)
	return token
}
