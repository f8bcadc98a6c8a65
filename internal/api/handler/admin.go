package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/integrator/backend/backendclient"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dispatching"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-dashboard-api/pkg/middleware"
)

const (
	uploadFormField = "file"
	// folga para os cabeçalhos do multipart
	multipartOverhead = 1 << 20
)

// readUploadFile lê o campo "file" do formulário multipart, respeitando o limite de tamanho
func readUploadFile(w http.ResponseWriter, r *http.Request, maxBytes int64) (domain.UploadFile, bool) {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo acima do limite permitido", nil)
			return domain.UploadFile{}, false
		}
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Selecione um arquivo CSV", nil)
		return domain.UploadFile{}, false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler arquivo enviado")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler arquivo enviado", nil)
		return domain.UploadFile{}, false
	}

	return domain.UploadFile{Name: header.Filename, Content: content}, true
}

// AdminUpload repassa o CSV ao backend com o token da sessão
func AdminUpload(service *dispatching.UploadService, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AdminUpload")

		file, ok := readUploadFile(w, r, maxBytes)
		if !ok {
			return
		}

		receipt, err := service.UploadFile(r.Context(), file, backendclient.EndpointAdminUpload, middleware.TokenFromContext(r.Context()))
		if err != nil {
			handleError(w, err, "Erro ao enviar arquivo")
			return
		}
		writeJSON(w, http.StatusOK, receipt)
	}
}

func TrainAndPredict(service *dispatching.UploadService, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TrainAndPredict")

		file, ok := readUploadFile(w, r, maxBytes)
		if !ok {
			return
		}

		result, err := service.TrainAndPredict(r.Context(), file, middleware.TokenFromContext(r.Context()))
		if err != nil {
			handleError(w, err, "Erro ao gerar previsões")
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
