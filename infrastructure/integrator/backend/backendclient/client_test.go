package backendclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.Backend{
		BaseURL:   server.URL,
		SMSAPIKey: "sms-key",
		Timeout:   5 * time.Second,
	})
}

func TestClient_Upload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, EndpointAdminUpload, r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "orders.csv", header.Filename)
		assert.Equal(t, "id,product\n1,Wheat\n", string(content))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	body, err := client.Upload(context.Background(), EndpointAdminUpload, "token-123", domain.UploadFile{
		Name:    "orders.csv",
		Content: []byte("id,product\n1,Wheat\n"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestClient_Upload_NonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	_, err := client.Upload(context.Background(), EndpointTrainAndPredict, "", domain.UploadFile{Name: "x.csv", Content: []byte("a\n1\n")})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.StatusCode)
	assert.Equal(t, EndpointTrainAndPredict, statusErr.Endpoint)
}

func TestClient_Upload_OnlyOKIsSuccess(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "created", status: http.StatusCreated},
		{name: "accepted", status: http.StatusAccepted},
		{name: "no content", status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.Upload(context.Background(), EndpointAdminUpload, "token-123", domain.UploadFile{Name: "orders.csv", Content: []byte("id\n1\n")})

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, EndpointAdminUpload, statusErr.Endpoint)
		})
	}
}

func TestClient_CheckAndNotify(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inventory/check-and-notify", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, map[string]string{"phone_number": "+5511999999999"}, payload)

		_, _ = w.Write([]byte(`{"low_stock":["Wheat"],"sent":true}`))
	})

	result, err := client.CheckAndNotify(context.Background(), "+5511999999999")
	require.NoError(t, err)
	assert.Equal(t, true, result["sent"])
}

func TestClient_CheckAndNotify_EmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	result, err := client.CheckAndNotify(context.Background(), "+5511999999999")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestClient_SendAlert(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sms/send", r.URL.Path)
		assert.Equal(t, "sms-key", r.URL.Query().Get("key"))

		var payload sendSMSRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "+5511999999999", payload.PhoneNumber)
		assert.Equal(t, "Estoque baixo: Wheat", payload.Message)

		w.WriteHeader(http.StatusAccepted)
	})

	require.NoError(t, client.SendAlert(context.Background(), "+5511999999999", "Estoque baixo: Wheat"))
}

func TestClient_SendAlert_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.SendAlert(context.Background(), "+5511999999999", "oi")
	assert.Error(t, err)
}
