package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dispatching"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/preferences"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// handleError traduz os erros dos casos de uso para o envelope da API
func handleError(w http.ResponseWriter, err error, fallback string) {
	var dispatchErr *dispatching.DispatchError
	if errors.As(err, &dispatchErr) {
		var details any
		if dispatchErr.Details != "" {
			details = map[string]string{"reason": dispatchErr.Details}
		}
		apiErrors.WriteError(w, dispatchErr.Code, dispatchErr.Err.Error(), details)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	if errors.Is(err, preferences.ErrMissingUser) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return
	}

	logrus.WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
