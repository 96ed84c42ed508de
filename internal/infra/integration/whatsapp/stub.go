package whatsapp

import (
	"context"

	"github.com/rs/zerolog"
)

// StubSender não fala com o provedor. Devolve "" e o orquestrador gera o ID.
type StubSender struct {
	Log zerolog.Logger
}

func NewStubSender(log zerolog.Logger) *StubSender {
	return &StubSender{Log: log}
}

func (s *StubSender) Send(ctx context.Context, to, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.Log.Warn().Str("to", to).Int("body_len", len(body)).Msg("⚠️ WhatsApp stub: mensagem não enviada ao provedor")
	return "", nil
}
