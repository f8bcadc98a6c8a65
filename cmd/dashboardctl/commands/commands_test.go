package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/memstore"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/seed"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/integrator/backend/backendclient"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/realtime"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
)

func useBackend(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	previous := loadConfig
	loadConfig = func() (*config.Config, error) {
		return &config.Config{
			App: config.App{LogLevel: "error"},
			Backend: config.Backend{
				BaseURL:        server.URL,
				Timeout:        5 * time.Second,
				MaxUploadBytes: 1 << 20,
			},
			Alerts: config.Alerts{Channel: "sms"},
		}, nil
	}
	t.Cleanup(func() { loadConfig = previous })
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "stock.csv")
	require.NoError(t, os.WriteFile(name, []byte(content), 0o600))
	return name
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestUploadCommand(t *testing.T) {
	useBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, backendclient.EndpointAdminUpload, r.URL.Path)
		assert.Equal(t, "Bearer cli-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})

	out, err := execute(t, "upload", writeCSV(t, "product,quantity\nWheat,10\n"), "--token", "cli-token")
	require.NoError(t, err)

	var receipt domain.UploadReceipt
	require.NoError(t, json.Unmarshal([]byte(out), &receipt))
	assert.Equal(t, "stock.csv", receipt.FileName)
	assert.Equal(t, backendclient.EndpointAdminUpload, receipt.Endpoint)
	assert.NotEmpty(t, receipt.ID)
}

func TestUploadCommand_MissingFile(t *testing.T) {
	useBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend não deveria ser chamado")
	})

	_, err := execute(t, "upload", filepath.Join(t.TempDir(), "nao-existe.csv"))
	require.Error(t, err)
}

func TestPredictCommand(t *testing.T) {
	useBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, backendclient.EndpointTrainAndPredict, r.URL.Path)
		_, _ = w.Write([]byte(`{"predictions":[{"ds":"2024-01-01","yhat":12.5}]}`))
	})

	out, err := execute(t, "predict", writeCSV(t, "ds,y\n2023-12-01,10\n"), "--token", "cli-token")
	require.NoError(t, err)

	var result domain.PredictionResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Predictions, 1)
}

// lockedBuffer é lido pelo teste enquanto watchArea escreve
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchArea(t *testing.T) {
	store := memstore.New()
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, seed.Demo(context.Background(), store))

	service := dashboarding.NewService(realtime.NewBridge(store), config.Views{})

	out := &lockedBuffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchArea(ctx, cmd, service, dashboarding.AreaSales)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), `"total_orders":4`)
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watchArea não terminou após o cancelamento")
	}
}
