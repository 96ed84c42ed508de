package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/xavierca1/whatsapp-dispatch/internal/config"
	"github.com/xavierca1/whatsapp-dispatch/internal/infra/database"
	"github.com/xavierca1/whatsapp-dispatch/internal/infra/http/handlers"
	"github.com/xavierca1/whatsapp-dispatch/internal/infra/http/router"
	"github.com/xavierca1/whatsapp-dispatch/internal/infra/integration/whatsapp"
	"github.com/xavierca1/whatsapp-dispatch/internal/logger"
	"github.com/xavierca1/whatsapp-dispatch/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	log := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Configuração inválida")
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Erro ao conectar no banco")
	}
	defer db.Close()

	if cfg.RunMigrations {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := database.RunMigrations(ctx, db)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("❌ Erro ao aplicar migrations")
		}
		log.Info().Msg("🗄️ Migrations aplicadas")
	}

	// 1. Repositórios
	templateRepo := database.NewTemplateRepository(db)
	optInRepo := database.NewOptInRepository(db)
	userRepo := database.NewUserRepository(db)
	deliveryRepo := database.NewDeliveryRepository(db)

	// 2. Provedor WhatsApp (stub quando não configurado)
	var sender usecase.MessageSender
	if cfg.WhatsAppConfigured() {
		sender = whatsapp.NewClient(cfg.WhatsAppAccessToken, cfg.WhatsAppPhoneID, cfg.WhatsAppAPIURL, cfg.WhatsAppHTTPTimeout, log)
	} else {
		log.Warn().Msg("⚠️ WHATSAPP_ACCESS_TOKEN/WHATSAPP_PHONE_ID ausentes: usando stub")
		sender = whatsapp.NewStubSender(log)
	}

	// 3. UseCases
	dispatchUC := usecase.NewDispatchMessageUseCase(templateRepo, optInRepo, userRepo, deliveryRepo, sender, usecase.UUIDGenerator{}, log)
	dispatchUC.Timeout = cfg.DispatchTimeout

	createTemplateUC := usecase.NewCreateTemplateUseCase(templateRepo, log)
	listTemplatesUC := usecase.NewListTemplatesUseCase(templateRepo)
	getTemplateUC := usecase.NewGetTemplateUseCase(templateRepo)
	setOptInUC := usecase.NewSetOptInUseCase(optInRepo, log)
	getOptInUC := usecase.NewGetOptInUseCase(optInRepo)
	listDeliveriesUC := usecase.NewListDeliveriesUseCase(deliveryRepo)

	// 4. Handlers + Router
	r := router.New(router.Handlers{
		Dispatch:  handlers.NewDispatchHandler(dispatchUC, log),
		Templates: handlers.NewTemplateHandler(createTemplateUC, listTemplatesUC, getTemplateUC),
		OptIns:    handlers.NewOptInHandler(setOptInUC, getOptInUC),
		Delivery:  handlers.NewDeliveryHandler(listDeliveriesUC),
		Health:    handlers.NewHealthHandler(db),
	}, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              cfg.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.DispatchTimeout + 10*time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.AppAddr).Str("base_url", cfg.BaseURL).Msg("🔥 Server WhatsApp Dispatch rodando")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("❌ Servidor caiu")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("❌ Erro no shutdown")
	}
	log.Info().Msg("👋 Servidor encerrado")
}
