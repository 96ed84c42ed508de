package entity

import (
	"context"
	"errors"
	"time"
)

var ErrOptInNotFound = errors.New("opt-in não encontrado")

// OptIn guarda o consentimento do usuário para receber mensagens no WhatsApp.
// Uma linha por usuário, last-write-wins no user_id.
type OptIn struct {
	UserID    string    `json:"user_id"`
	OptedIn   bool      `json:"opted_in"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewOptIn(userID string, optedIn bool) *OptIn {
	return &OptIn{
		UserID:    userID,
		OptedIn:   optedIn,
		UpdatedAt: time.Now().UTC(),
	}
}

type OptInRepository interface {
	Upsert(ctx context.Context, o *OptIn) error
	FindByUserID(ctx context.Context, userID string) (*OptIn, error)
}
