package backendclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type checkAndNotifyRequest struct {
	PhoneNumber string `json:"phone_number"`
}

type sendSMSRequest struct {
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
}

// CheckAndNotify pede ao backend que verifique o estoque e avise o telefone.
// A resposta não tem formato definido e é devolvida como veio.
func (c *Client) CheckAndNotify(ctx context.Context, phone string) (map[string]any, error) {
	resp, err := c.postJSON(ctx, endpointCheckAndNotify, nil, checkAndNotifyRequest{PhoneNumber: phone})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	result := map[string]any{}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}
	return result, nil
}

// SendAlert envia o SMS; a resposta é descartada
func (c *Client) SendAlert(ctx context.Context, phone, message string) error {
	query := url.Values{}
	query.Set("key", c.smsAPIKey)

	resp, err := c.postJSON(ctx, endpointSendSMS, query, sendSMSRequest{PhoneNumber: phone, Message: message})
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	return resp.Body.Close()
}

func (c *Client) postJSON(ctx context.Context, endpoint string, query url.Values, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	endpointURL, err := c.endpointURL(endpoint, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}

	if err := checkStatus(endpoint, resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}
