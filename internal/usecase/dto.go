package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/xavierca1/whatsapp-dispatch/internal/entity"
)

// MessageParams aceita string, número ou bool no JSON (igual ao String(value) do front).
type MessageParams map[string]string

func (p *MessageParams) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = nil
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("message_params must be an object: %w", err)
	}

	out := make(MessageParams, len(raw))
	for k, v := range raw {
		s, err := scalarToString(v)
		if err != nil {
			return fmt.Errorf("message_params.%s: %w", k, err)
		}
		out[k] = s
	}
	*p = out
	return nil
}

func scalarToString(v json.RawMessage) (string, error) {
	if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return "null", nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String(), nil
	}
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return strconv.FormatBool(b), nil
	}
	return "", fmt.Errorf("unsupported value %s", string(v))
}

// DispatchMessageInput não tem tags de validação: um ID vazio ou malformado
// é só um template/usuário que não existe.
type DispatchMessageInput struct {
	TrustID       string        `json:"trust_id"`
	TemplateID    string        `json:"template_id"`
	UserID        string        `json:"user_id"`
	MessageParams MessageParams `json:"message_params"`
}

type DispatchMessageOutput struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id"`
}

type CreateTemplateInput struct {
	TrustID         string `json:"trust_id" validate:"required,uuid"`
	TemplateName    string `json:"template_name" validate:"required,max=64"`
	TemplateContent string `json:"template_content" validate:"required,max=512"`
}

type TemplateOutput struct {
	ID              string    `json:"id"`
	TrustID         string    `json:"trust_id"`
	TemplateName    string    `json:"template_name"`
	TemplateContent string    `json:"template_content"`
	Placeholders    []string  `json:"placeholders"`
	CreatedAt       time.Time `json:"created_at"`
}

func newTemplateOutput(t *entity.Template) *TemplateOutput {
	return &TemplateOutput{
		ID:              t.ID,
		TrustID:         t.OrganizationID,
		TemplateName:    t.Name,
		TemplateContent: t.Body,
		Placeholders:    Placeholders(t.Body),
		CreatedAt:       t.CreatedAt,
	}
}

type SetOptInInput struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	OptedIn *bool  `json:"opted_in" validate:"required"`
}

type OptInOutput struct {
	UserID  string `json:"user_id"`
	OptedIn bool   `json:"opted_in"`
}
