package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/whatsapp-dispatch/internal/entity"
)

type TemplateRepository struct {
	DB *sql.DB
}

func NewTemplateRepository(db *sql.DB) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

func (r *TemplateRepository) Create(ctx context.Context, t *entity.Template) error {
	query := `INSERT INTO whatsapp_templates (id, trust_id, template_name, template_content, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.DB.ExecContext(ctx, query, t.ID, t.OrganizationID, t.Name, t.Body, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar template: %w", err)
	}
	return nil
}

func (r *TemplateRepository) FindByID(ctx context.Context, id string) (*entity.Template, error) {
	query := `SELECT id, trust_id, template_name, template_content, created_at FROM whatsapp_templates WHERE id = $1`

	var t entity.Template
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.OrganizationID, &t.Name, &t.Body, &t.CreatedAt)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("erro ao buscar template: %w", err)
	}
	return &t, nil
}

// ListByOrganization: mais novos primeiro
func (r *TemplateRepository) ListByOrganization(ctx context.Context, organizationID string) ([]*entity.Template, error) {
	query := `SELECT id, trust_id, template_name, template_content, created_at FROM whatsapp_templates WHERE trust_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar templates: %w", err)
	}
	defer rows.Close()

	templates := []*entity.Template{}
	for rows.Next() {
		t := &entity.Template{}
		if err := rows.Scan(&t.ID, &t.OrganizationID, &t.Name, &t.Body, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar templates: %w", err)
	}
	return templates, nil
}
