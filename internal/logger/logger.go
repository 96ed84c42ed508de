package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New cria o logger da aplicação: console legível em desenvolvimento, JSON no stdout nos demais ambientes.
func New(appEnv string) zerolog.Logger {
	return newWithWriter(appEnv, os.Stdout)
}

func newWithWriter(appEnv string, out io.Writer) zerolog.Logger {
	env := strings.ToLower(strings.TrimSpace(appEnv))
	if env == "development" || env == "dev" {
		cw := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = out
			w.TimeFormat = "2006-01-02 15:04:05"
		})
		return zerolog.New(cw).Level(zerolog.DebugLevel).With().Timestamp().Str("service", "whatsapp-dispatch").Logger()
	}
	return zerolog.New(out).Level(zerolog.InfoLevel).With().Timestamp().Str("service", "whatsapp-dispatch").Logger()
}

// Nop descarta tudo (testes).
func Nop() zerolog.Logger {
	return zerolog.New(io.Discard)
}
