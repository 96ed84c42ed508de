package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultWhatsAppAPIURL = "https://graph.facebook.com/v18.0"
	defaultBaseURL        = "http://localhost:8080"
	defaultTimeout        = 10 * time.Second
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL é obrigatório")

type Config struct {
	AppEnv             string
	AppAddr            string
	CORSAllowedOrigins []string

	// BaseURL é onde chamadores internos encontram POST /api/whatsapp.
	BaseURL string

	DatabaseURL   string
	RunMigrations bool

	WhatsAppAccessToken string
	WhatsAppPhoneID     string
	WhatsAppAPIURL      string
	WhatsAppHTTPTimeout time.Duration

	DispatchTimeout time.Duration
}

// WhatsAppConfigured indica se o cliente real pode ser usado no lugar do stub.
func (c Config) WhatsAppConfigured() bool {
	return c.WhatsAppAccessToken != "" && c.WhatsAppPhoneID != ""
}

func Load() (Config, error) {
	c := Config{}

	c.AppEnv = getEnv("APP_ENV", "development")
	c.AppAddr = getEnv("APP_ADDR", ":8080")
	c.CORSAllowedOrigins = splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"))
	c.BaseURL = BaseURL()

	c.DatabaseURL = getEnv("DATABASE_URL", "")
	c.RunMigrations = getBool("RUN_MIGRATIONS", true)

	c.WhatsAppAccessToken = getEnv("WHATSAPP_ACCESS_TOKEN", "")
	c.WhatsAppPhoneID = getEnv("WHATSAPP_PHONE_ID", "")
	c.WhatsAppAPIURL = getEnv("WHATSAPP_API_URL", DefaultWhatsAppAPIURL)
	c.WhatsAppHTTPTimeout = getDuration("WHATSAPP_HTTP_TIMEOUT", defaultTimeout)

	c.DispatchTimeout = getDuration("DISPATCH_TIMEOUT", defaultTimeout)

	if c.DatabaseURL == "" {
		return c, ErrMissingDatabaseURL
	}
	return c, nil
}

// BaseURL lê BASE_URL, o endereço onde chamadores internos encontram POST /api/whatsapp.
// Não depende de Load: clientes da API leem o mesmo valor sem DATABASE_URL.
func BaseURL() string {
	return strings.TrimRight(getEnv("BASE_URL", defaultBaseURL), "/")
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err == nil && d > 0 {
			return d
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
