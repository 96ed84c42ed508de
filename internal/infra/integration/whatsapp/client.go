package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const DefaultBaseURL = "https://graph.facebook.com/v18.0"

var ErrNotConfigured = errors.New("whatsapp não configurado")

// Client envia mensagens de texto pela WhatsApp Cloud API.
type Client struct {
	accessToken string
	phoneID     string
	baseURL     string
	httpClient  *http.Client
	log         zerolog.Logger
}

func NewClient(accessToken, phoneID, baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		accessToken: accessToken,
		phoneID:     phoneID,
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
		log:         log,
	}
}

// Send devolve o ID da mensagem no provedor (wamid.*).
func (c *Client) Send(ctx context.Context, to, body string) (string, error) {
	if c.accessToken == "" || c.phoneID == "" {
		c.log.Warn().Msg("⚠️ WhatsApp: ACCESS_TOKEN ou PHONE_ID não configurados")
		return "", ErrNotConfigured
	}

	payload := SendTextRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             TextBody{Body: body},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("whatsapp: erro ao serializar payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("whatsapp: erro ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Msg("❌ WhatsApp: erro ao enviar mensagem")
		return "", fmt.Errorf("whatsapp: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var result SendMessageResponse
	decodeErr := json.Unmarshal(respBody, &result)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if decodeErr == nil && result.Error != nil {
			c.log.Error().Int("status", resp.StatusCode).Int("code", result.Error.Code).Msg("❌ WhatsApp: " + result.Error.Message)
			return "", fmt.Errorf("whatsapp api error %d: %s", resp.StatusCode, result.Error.Message)
		}
		c.log.Error().Int("status", resp.StatusCode).Str("body", string(respBody)).Msg("❌ WhatsApp: API retornou erro")
		return "", fmt.Errorf("whatsapp api error: %d", resp.StatusCode)
	}

	if decodeErr != nil {
		return "", fmt.Errorf("whatsapp: erro ao parsear resposta: %w", decodeErr)
	}
	if result.Error != nil {
		return "", fmt.Errorf("whatsapp: %s", result.Error.Message)
	}
	if len(result.Messages) == 0 || result.Messages[0].ID == "" {
		return "", errors.New("whatsapp: resposta sem message id")
	}

	c.log.Info().Str("to", to).Str("message_id", result.Messages[0].ID).Msg("✅ WhatsApp: mensagem enviada")
	return result.Messages[0].ID, nil
}
