package dispatching

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/jszwec/csvutil"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/integrator/backend/backendclient"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const uploadSuccessMessage = "Arquivo enviado e processado! O painel será atualizado em instantes."

// UploadService envia CSVs ao backend e repassa a verificação de estoque
type UploadService struct {
	uploader Uploader
	notifier InventoryNotifier
	maxBytes int64
	now      func() time.Time
}

func NewUploadService(uploader Uploader, notifier InventoryNotifier, maxBytes int64) *UploadService {
	return &UploadService{
		uploader: uploader,
		notifier: notifier,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

// UploadFile faz o POST multipart. O resultado é binário: recibo ou erro com mensagem legível.
func (s *UploadService) UploadFile(ctx context.Context, file domain.UploadFile, endpoint, bearer string) (*domain.UploadReceipt, error) {
	if _, err := s.validate(file); err != nil {
		return nil, err
	}

	if _, err := s.uploader.Upload(ctx, endpoint, bearer, file); err != nil {
		logrus.WithError(err).WithField("endpoint", endpoint).Error("Erro ao enviar arquivo")
		return nil, NewDispatchError(ErrUploadFailed, apiErrors.ErrUploadFailed, err.Error())
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewDispatchError(err, apiErrors.ErrInternalServer, "erro ao gerar o ID do recibo")
	}

	return &domain.UploadReceipt{
		ID:         id,
		FileName:   file.Name,
		Endpoint:   endpoint,
		UploadedAt: s.now(),
		Message:    uploadSuccessMessage,
	}, nil
}

// TrainAndPredict envia o CSV ao endpoint de previsão; resposta sem "predictions" vira lista vazia
func (s *UploadService) TrainAndPredict(ctx context.Context, file domain.UploadFile, bearer string) (*domain.PredictionResult, error) {
	if _, err := s.validate(file); err != nil {
		return nil, err
	}

	body, err := s.uploader.Upload(ctx, backendclient.EndpointTrainAndPredict, bearer, file)
	if err != nil {
		logrus.WithError(err).Error("Erro ao enviar arquivo para previsão")
		return nil, NewDispatchError(ErrUploadFailed, apiErrors.ErrUploadFailed, err.Error())
	}

	result := &domain.PredictionResult{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return nil, NewDispatchError(ErrUploadFailed, apiErrors.ErrUploadFailed, "resposta de previsão inválida")
		}
	}
	if result.Predictions == nil {
		result.Predictions = []any{}
	}
	return result, nil
}

// CheckAndNotify repassa o telefone ao backend; a resposta não tem formato definido
func (s *UploadService) CheckAndNotify(ctx context.Context, phone string) (map[string]any, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, NewDispatchError(ErrMissingTarget, apiErrors.ErrMissingRequiredData, "")
	}

	result, err := s.notifier.CheckAndNotify(ctx, phone)
	if err != nil {
		logrus.WithError(err).Error("Erro ao verificar estoque no backend")
		return nil, NewDispatchError(ErrBackendOperation, apiErrors.ErrExternalService, err.Error())
	}
	return result, nil
}

// validate confere tamanho e cabeçalho do CSV antes de gastar uma chamada ao backend
func (s *UploadService) validate(file domain.UploadFile) ([]string, error) {
	if s.maxBytes > 0 && int64(len(file.Content)) > s.maxBytes {
		return nil, NewDispatchError(ErrInvalidUpload, apiErrors.ErrPayloadTooLarge, "arquivo acima do limite permitido")
	}
	if len(bytes.TrimSpace(file.Content)) == 0 {
		return nil, NewDispatchError(ErrInvalidUpload, apiErrors.ErrInvalidFormat, "arquivo vazio")
	}

	dec, err := csvutil.NewDecoder(csv.NewReader(bytes.NewReader(file.Content)))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, NewDispatchError(ErrInvalidUpload, apiErrors.ErrInvalidFormat, "arquivo sem cabeçalho")
		}
		return nil, NewDispatchError(ErrInvalidUpload, apiErrors.ErrInvalidFormat, err.Error())
	}

	header := dec.Header()
	for _, column := range header {
		if strings.TrimSpace(column) == "" {
			return nil, NewDispatchError(ErrInvalidUpload, apiErrors.ErrInvalidFormat, "cabeçalho com coluna vazia")
		}
	}
	return header, nil
}
