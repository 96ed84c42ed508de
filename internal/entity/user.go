package entity

import (
	"context"
	"errors"
	"strings"
)

var ErrUserNotFound = errors.New("usuário não encontrado")

// User vem do backend de auth. Aqui é só leitura.
type User struct {
	ID             string `json:"id"`
	ContactAddress string `json:"whatsapp_number,omitempty"` // Ex: "5511999999999"
	Email          string `json:"email"`
}

func (u *User) HasContactAddress() bool {
	return u != nil && strings.TrimSpace(u.ContactAddress) != ""
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*User, error)
}
