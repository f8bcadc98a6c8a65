package backendclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

// maxResponseBytes limita o corpo lido das respostas de upload
const maxResponseBytes = 8 << 20

// Upload envia o arquivo no campo multipart "file". O resultado é binário: 2xx ou erro.
// bearer vazio envia a requisição sem Authorization.
func (c *Client) Upload(ctx context.Context, endpoint, bearer string, file domain.UploadFile) ([]byte, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o formulário: %w", err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return nil, fmt.Errorf("erro ao escrever o arquivo no formulário: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar o formulário: %w", err)
	}

	endpointURL, err := c.endpointURL(endpoint, nil)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, &body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if err := checkOK(endpoint, resp); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}
	return data, nil
}
