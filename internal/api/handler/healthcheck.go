package handler

import (
	"net/http"
	"time"
)

const (
	healthStatusOK       = "ok"
	healthStatusStarting = "starting"
)

// ReadinessChecker é implementado pelo dashboarding.Service
type ReadinessChecker interface {
	Ready() bool
}

type healthResponse struct {
	Status         string `json:"status"`
	Time           string `json:"time"`
	DocumentsReady bool   `json:"documents_ready"`
}

// HealthcheckHandler responde 200 mesmo antes do primeiro snapshot; o campo status diz se o painel já carregou
func HealthcheckHandler(checker ReadinessChecker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ready := checker.Ready()
		status := healthStatusOK
		if !ready {
			status = healthStatusStarting
		}

		writeJSON(w, http.StatusOK, healthResponse{
			Status:         status,
			Time:           time.Now().Format(time.RFC3339),
			DocumentsReady: ready,
		})
	})
}
