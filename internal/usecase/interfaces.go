package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MessageSender é o provedor de WhatsApp. Devolve o ID da mensagem no provedor,
// ou "" quando o provedor não gera um (stub).
type MessageSender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// IDGenerator gera IDs únicos. Testes injetam uma sequência determinística.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

// Prefixos separados: um ID de falha nunca colide com um ID de sucesso.
const (
	SentIDPrefix   = "msg-"
	FailedIDPrefix = "error-"
)
