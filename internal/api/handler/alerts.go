package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dispatching"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
)

type AlertRequest struct {
	Target  string `json:"target"`
	Message string `json:"message"`
}

type CheckAndNotifyRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// SendAlert enfileira o alerta e responde com a confirmação local, sem esperar o envio
func SendAlert(service *dispatching.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SendAlert")

		var req AlertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		ack, err := service.SendAlert(req.Target, req.Message)
		if err != nil {
			handleError(w, err, "Erro ao enviar alerta")
			return
		}
		writeJSON(w, http.StatusAccepted, ack)
	}
}

func CheckAndNotify(service *dispatching.UploadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CheckAndNotify")

		var req CheckAndNotifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		result, err := service.CheckAndNotify(r.Context(), req.PhoneNumber)
		if err != nil {
			handleError(w, err, "Erro ao verificar estoque")
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
