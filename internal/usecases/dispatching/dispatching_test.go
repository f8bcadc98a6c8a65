package dispatching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/integrator/backend/backendclient"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dispatching/mocks"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var sampleCSV = domain.UploadFile{
	Name:    "sales.csv",
	Content: []byte("ds,y\n2024-01-01,10\n2024-01-02,12\n"),
}

func TestAlertService_SendAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockAlertSender(ctrl)
	svc := NewAlertService(sender, "sms", time.Second)

	sender.EXPECT().
		SendAlert(gomock.Any(), "+5511999999999", "Estoque baixo").
		Return(errors.New("gateway fora do ar"))

	ack, err := svc.SendAlert(" +5511999999999 ", "Estoque baixo")
	svc.Wait()

	require.NoError(t, err)
	assert.Len(t, ack.ID, 10)
	assert.Equal(t, "+5511999999999", ack.Target)
	assert.Equal(t, "sms", ack.Channel)
}

func TestAlertService_SendAlert_Validation(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		message string
		wantErr error
	}{
		{name: "sem destinatário", target: "  ", message: "oi", wantErr: ErrMissingTarget},
		{name: "mensagem vazia", target: "+55", message: "", wantErr: ErrEmptyMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewAlertService(mocks.NewMockAlertSender(ctrl), "sms", 0)

			ack, err := svc.SendAlert(tt.target, tt.message)
			assert.Nil(t, ack)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUploadService_UploadFile(t *testing.T) {
	tests := []struct {
		name      string
		file      domain.UploadFile
		maxBytes  int64
		setup     func(uploader *mocks.MockUploader)
		wantCode  string
		wantError bool
	}{
		{
			name: "sucesso",
			file: sampleCSV,
			setup: func(uploader *mocks.MockUploader) {
				uploader.EXPECT().
					Upload(gomock.Any(), backendclient.EndpointAdminUpload, "token", sampleCSV).
					Return([]byte(`{}`), nil)
			},
		},
		{
			name: "backend recusa",
			file: sampleCSV,
			setup: func(uploader *mocks.MockUploader) {
				uploader.EXPECT().
					Upload(gomock.Any(), backendclient.EndpointAdminUpload, "token", sampleCSV).
					Return(nil, &backendclient.StatusError{StatusCode: 500, Status: "500 Internal Server Error"})
			},
			wantCode:  apiErrors.ErrUploadFailed,
			wantError: true,
		},
		{
			name:      "arquivo vazio",
			file:      domain.UploadFile{Name: "vazio.csv", Content: []byte("  \n")},
			setup:     func(*mocks.MockUploader) {},
			wantCode:  apiErrors.ErrInvalidFormat,
			wantError: true,
		},
		{
			name:      "acima do limite",
			file:      sampleCSV,
			maxBytes:  4,
			setup:     func(*mocks.MockUploader) {},
			wantCode:  apiErrors.ErrPayloadTooLarge,
			wantError: true,
		},
		{
			name:      "cabeçalho com coluna vazia",
			file:      domain.UploadFile{Name: "x.csv", Content: []byte("ds,,y\n1,2,3\n")},
			setup:     func(*mocks.MockUploader) {},
			wantCode:  apiErrors.ErrInvalidFormat,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uploader := mocks.NewMockUploader(ctrl)
			tt.setup(uploader)

			svc := NewUploadService(uploader, mocks.NewMockInventoryNotifier(ctrl), tt.maxBytes)
			receipt, err := svc.UploadFile(context.Background(), tt.file, backendclient.EndpointAdminUpload, "token")

			if tt.wantError {
				var dispatchErr *DispatchError
				require.ErrorAs(t, err, &dispatchErr)
				assert.Equal(t, tt.wantCode, dispatchErr.Code)
				assert.Nil(t, receipt)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "sales.csv", receipt.FileName)
			assert.Equal(t, backendclient.EndpointAdminUpload, receipt.Endpoint)
			assert.NotEmpty(t, receipt.ID)
			assert.Equal(t, uploadSuccessMessage, receipt.Message)
		})
	}
}

func TestUploadService_TrainAndPredict(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []any
	}{
		{name: "com previsões", response: `{"predictions":[10.5,12]}`, want: []any{10.5, float64(12)}},
		{name: "sem campo predictions", response: `{"status":"ok"}`, want: []any{}},
		{name: "corpo vazio", response: ``, want: []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uploader := mocks.NewMockUploader(ctrl)
			uploader.EXPECT().
				Upload(gomock.Any(), backendclient.EndpointTrainAndPredict, "", sampleCSV).
				Return([]byte(tt.response), nil)

			svc := NewUploadService(uploader, mocks.NewMockInventoryNotifier(ctrl), 0)
			result, err := svc.TrainAndPredict(context.Background(), sampleCSV, "")

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Predictions)
		})
	}
}

func TestUploadService_CheckAndNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockInventoryNotifier(ctrl)
	svc := NewUploadService(mocks.NewMockUploader(ctrl), notifier, 0)

	notifier.EXPECT().
		CheckAndNotify(gomock.Any(), "+5511999999999").
		Return(map[string]any{"sent": true}, nil)
	notifier.EXPECT().
		CheckAndNotify(gomock.Any(), "+5511888888888").
		Return(nil, errors.New("timeout"))

	result, err := svc.CheckAndNotify(context.Background(), "+5511999999999")
	require.NoError(t, err)
	assert.Equal(t, true, result["sent"])

	_, err = svc.CheckAndNotify(context.Background(), "+5511888888888")
	assert.ErrorIs(t, err, ErrBackendOperation)

	_, err = svc.CheckAndNotify(context.Background(), " ")
	assert.ErrorIs(t, err, ErrMissingTarget)
}

func TestOrderOverlay(t *testing.T) {
	orders := []domain.Order{
		{ID: "02131", Product: "Kanly Kitadakate (Green)", Customer: "Leslie Alexander"},
		{ID: "02132", Product: "Wheat", Customer: "Jenny Wilson"},
	}

	overlay := NewOrderOverlay()
	require.NoError(t, overlay.Edit(orders, "02132", domain.Order{Product: "Basmati Rice", Customer: "Jenny Wilson"}))

	applied := overlay.Apply(orders)
	require.Len(t, applied, 2)
	assert.Equal(t, "Basmati Rice", applied[1].Product)
	assert.Equal(t, "02132", applied[1].ID)
	assert.Equal(t, "Wheat", orders[1].Product)

	require.NoError(t, overlay.Delete(orders, "02131"))
	applied = overlay.Apply(orders)
	require.Len(t, applied, 1)
	assert.Equal(t, "02132", applied[0].ID)

	assert.ErrorIs(t, overlay.Delete(orders, "02131"), ErrOrderNotFound)
	assert.ErrorIs(t, overlay.Edit(orders, "99999", domain.Order{}), ErrOrderNotFound)

	overlay.Reset()
	assert.Equal(t, orders, overlay.Apply(orders))
}

func TestOrderOverlay_Current(t *testing.T) {
	predicted := 3.5
	orders := []domain.Order{
		{ID: "02131", Product: "Wheat", Customer: "Leslie Alexander", PredictedQuantitySold: &predicted},
		{ID: "02132", Product: "Snacks", Customer: "Jenny Wilson"},
	}

	overlay := NewOrderOverlay()
	require.NoError(t, overlay.Edit(orders, "02132", domain.Order{Product: "Basmati Rice", Customer: "Jenny Wilson"}))

	edited, ok := overlay.Current(orders, "02132")
	require.True(t, ok)
	assert.Equal(t, "Basmati Rice", edited.Product)

	current, ok := overlay.Current(orders, "02131")
	require.True(t, ok)
	require.NotNil(t, current.PredictedQuantitySold)
	*current.PredictedQuantitySold = 9
	assert.Equal(t, 3.5, predicted)

	require.NoError(t, overlay.Delete(orders, "02131"))
	_, ok = overlay.Current(orders, "02131")
	assert.False(t, ok)
}
