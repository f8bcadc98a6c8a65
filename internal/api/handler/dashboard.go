package handler

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
)

const lowStockThresholdParam = "low_stock_threshold"

// parseThreshold lê o limite de estoque baixo; ausente vira 0 (limite configurado)
func parseThreshold(r *http.Request) (float64, error) {
	raw := r.URL.Query().Get(lowStockThresholdParam)
	if raw == "" {
		return 0, nil
	}

	threshold, err := strconv.ParseFloat(raw, 64)
	if err != nil || threshold < 0 {
		return 0, strconv.ErrSyntax
	}
	return threshold, nil
}

func GetDashboard(service *dashboarding.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		threshold, err := parseThreshold(r)
		if err != nil {
			logrus.WithField(lowStockThresholdParam, r.URL.Query().Get(lowStockThresholdParam)).Warn("Limite de estoque inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "low_stock_threshold deve ser um número positivo", nil)
			return
		}

		writeJSON(w, http.StatusOK, service.Dashboard(dashboarding.ViewParams{LowStockThreshold: threshold}))
	}
}
