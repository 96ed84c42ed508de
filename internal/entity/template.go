package entity

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var ErrTemplateNotFound = errors.New("template não encontrado")

const (
	TemplateNameMaxLen = 64
	TemplateBodyMaxLen = 512
)

// Template é o corpo de mensagem de uma organização (trust), com placeholders {{nome}}.
// Não existe caminho de update/delete: uma vez criado, é imutável.
type Template struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"trust_id"`
	Name           string    `json:"template_name"`
	Body           string    `json:"template_content"`
	CreatedAt      time.Time `json:"created_at"`
}

// Factory
func NewTemplate(organizationID, name, body string) (*Template, error) {
	t := &Template{
		ID:             uuid.New().String(),
		OrganizationID: strings.TrimSpace(organizationID),
		Name:           strings.TrimSpace(name),
		Body:           body,
		CreatedAt:      time.Now().UTC(),
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Template) Validate() error {
	if t.OrganizationID == "" {
		return errors.New("trust_id is required")
	}
	if t.Name == "" {
		return errors.New("template_name is required")
	}
	if utf8.RuneCountInString(t.Name) > TemplateNameMaxLen {
		return errors.New("template_name must not exceed 64 characters")
	}
	if strings.TrimSpace(t.Body) == "" {
		return errors.New("template_content is required")
	}
	if utf8.RuneCountInString(t.Body) > TemplateBodyMaxLen {
		return errors.New("template_content must not exceed 512 characters")
	}
	return nil
}

type TemplateRepository interface {
	Create(ctx context.Context, t *Template) error
	FindByID(ctx context.Context, id string) (*Template, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*Template, error)
}
