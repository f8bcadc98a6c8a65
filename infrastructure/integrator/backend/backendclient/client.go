// Package backendclient fala com o backend externo de processamento de CSV, previsão e SMS
package backendclient

import (
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	EndpointAdminUpload     = "/api/admin-upload"
	EndpointTrainAndPredict = "/api/train-and-predict"
	endpointCheckAndNotify  = "/inventory/check-and-notify"
	endpointSendSMS         = "/sms/send"

	defaultTimeout = 30 * time.Second
)

// StatusError indica que o backend respondeu com um status que não é de sucesso para o endpoint
type StatusError struct {
	Endpoint   string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("requisição para %s falhou com status: %s", e.Endpoint, e.Status)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	smsAPIKey  string
}

func NewClient(cfg config.Backend) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   cfg.BaseURL,
		smsAPIKey: cfg.SMSAPIKey,
	}
}

func (c *Client) endpointURL(endpoint string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	u.Path = path.Join(u.Path, endpoint)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// checkOK é usado nos uploads, cujo contrato só reconhece 200 como sucesso
func checkOK(endpoint string, resp *http.Response) error {
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return nil
}

func checkStatus(endpoint string, resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return nil
}
