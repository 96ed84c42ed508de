package dispatchapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const dispatchPath = "/api/whatsapp"

// Client chama POST {BaseURL}/api/whatsapp de outro serviço interno.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Send devolve o body decodificado também para respostas 4xx/5xx. O erro só
// aparece em falha de transporte ou body ilegível.
func (c *Client) Send(ctx context.Context, input DispatchRequest) (*DispatchResult, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("dispatchapi: erro ao serializar payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+dispatchPath, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("dispatchapi: erro ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dispatchapi: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dispatchapi: erro ao ler resposta: %w", err)
	}

	var result DispatchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("dispatchapi: resposta inválida (status %d): %w", resp.StatusCode, err)
	}
	result.StatusCode = resp.StatusCode
	return &result, nil
}
