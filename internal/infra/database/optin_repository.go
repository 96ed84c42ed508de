package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/whatsapp-dispatch/internal/entity"
)

type OptInRepository struct {
	DB *sql.DB
}

func NewOptInRepository(db *sql.DB) *OptInRepository {
	return &OptInRepository{DB: db}
}

// Upsert: last-write-wins no user_id
func (r *OptInRepository) Upsert(ctx context.Context, o *entity.OptIn) error {
	query := `
		INSERT INTO user_whatsapp_optins (user_id, opted_in, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET
			opted_in = EXCLUDED.opted_in,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.DB.ExecContext(ctx, query, o.UserID, o.OptedIn, o.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao gravar opt-in: %w", err)
	}
	return nil
}

func (r *OptInRepository) FindByUserID(ctx context.Context, userID string) (*entity.OptIn, error) {
	query := `SELECT user_id, opted_in, updated_at FROM user_whatsapp_optins WHERE user_id = $1`

	var o entity.OptIn
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&o.UserID, &o.OptedIn, &o.UpdatedAt)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.ErrOptInNotFound
		}
		return nil, fmt.Errorf("erro ao buscar opt-in: %w", err)
	}
	return &o, nil
}
