package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xavierca1/whatsapp-dispatch/internal/infra/http/handlers"
	"github.com/xavierca1/whatsapp-dispatch/internal/infra/http/middleware"
)

type Handlers struct {
	Dispatch  *handlers.DispatchHandler
	Templates *handlers.TemplateHandler
	OptIns    *handlers.OptInHandler
	Delivery  *handlers.DeliveryHandler
	Health    *handlers.HealthHandler
}

func New(h Handlers, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health.Handle)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/api/whatsapp", h.Dispatch.Handle)
	r.Post("/dispatch", h.Dispatch.Handle)

	r.Post("/templates", h.Templates.HandleCreate)
	r.Get("/templates/{templateId}", h.Templates.HandleGet)
	r.Get("/trusts/{trustId}/templates", h.Templates.HandleList)

	r.Route("/users/{userId}", func(r chi.Router) {
		r.Put("/whatsapp-optin", h.OptIns.HandleSet)
		r.Get("/whatsapp-optin", h.OptIns.HandleGet)
		r.Get("/deliveries", h.Delivery.HandleList)
	})

	return r
}
