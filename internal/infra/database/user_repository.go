package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/whatsapp-dispatch/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT id, whatsapp_number, email FROM users WHERE id = $1`

	var u entity.User
	var number sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&u.ID, &number, &u.Email)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}
	u.ContactAddress = number.String
	return &u, nil
}
