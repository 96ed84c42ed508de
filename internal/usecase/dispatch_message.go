package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/xavierca1/whatsapp-dispatch/internal/entity"
)

const (
	DefaultDispatchTimeout = 10 * time.Second
	trackingWriteTimeout   = 5 * time.Second
)

type DispatchMessageUseCase struct {
	Templates  entity.TemplateRepository
	OptIns     entity.OptInRepository
	Users      entity.UserRepository
	Deliveries entity.DeliveryRepository
	Sender     MessageSender
	IDs        IDGenerator
	Now        Clock
	Timeout    time.Duration
	Log        zerolog.Logger
}

func NewDispatchMessageUseCase(
	templates entity.TemplateRepository,
	optIns entity.OptInRepository,
	users entity.UserRepository,
	deliveries entity.DeliveryRepository,
	sender MessageSender,
	ids IDGenerator,
	log zerolog.Logger,
) *DispatchMessageUseCase {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &DispatchMessageUseCase{
		Templates:  templates,
		OptIns:     optIns,
		Users:      users,
		Deliveries: deliveries,
		Sender:     sender,
		IDs:        ids,
		Now:        utcNow,
		Timeout:    DefaultDispatchTimeout,
		Log:        log,
	}
}

// Execute: template -> opt-in -> número -> interpolação -> envio -> tracking.
// Falhas antes do envio não gravam tracking: a mensagem nunca foi tentada.
// Falha no envio grava um registro "failed" (best-effort) e vira INTERNAL_ERROR.
func (uc *DispatchMessageUseCase) Execute(ctx context.Context, input DispatchMessageInput) (*DispatchMessageOutput, error) {
	if uc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.Timeout)
		defer cancel()
	}

	log := uc.Log.With().
		Str("trust_id", input.TrustID).
		Str("template_id", input.TemplateID).
		Str("user_id", input.UserID).
		Logger()

	// 1. Template
	template, err := uc.Templates.FindByID(ctx, input.TemplateID)
	if errors.Is(err, entity.ErrTemplateNotFound) {
		return nil, &DomainError{Code: CodeTemplateNotFound, Message: "Template not found"}
	}
	if err != nil {
		return nil, uc.abort(log, fmt.Errorf("falha ao buscar template: %w", err))
	}
	if input.TrustID != "" && template.OrganizationID != input.TrustID {
		log.Warn().Str("template_trust_id", template.OrganizationID).Msg("⚠️ Template pertence a outro trust")
		return nil, &DomainError{Code: CodeTemplateNotFound, Message: "Template not found"}
	}

	// 2. Opt-in
	optIn, err := uc.OptIns.FindByUserID(ctx, input.UserID)
	if errors.Is(err, entity.ErrOptInNotFound) {
		return nil, &DomainError{Code: CodeNotOptedIn, Message: "User not opted in to WhatsApp messaging"}
	}
	if err != nil {
		return nil, uc.abort(log, fmt.Errorf("falha ao buscar opt-in: %w", err))
	}
	if !optIn.OptedIn {
		return nil, &DomainError{Code: CodeNotOptedIn, Message: "User not opted in to WhatsApp messaging"}
	}

	// 3. Número do WhatsApp
	user, err := uc.Users.FindByID(ctx, input.UserID)
	if errors.Is(err, entity.ErrUserNotFound) {
		return nil, &DomainError{Code: CodeContactAddressMissing, Message: "User WhatsApp number not found"}
	}
	if err != nil {
		return nil, uc.abort(log, fmt.Errorf("falha ao buscar usuário: %w", err))
	}
	if !user.HasContactAddress() {
		return nil, &DomainError{Code: CodeContactAddressMissing, Message: "User WhatsApp number not found"}
	}

	// 4. Interpolação
	message := Interpolate(template.Body, input.MessageParams)
	if missing := missingParams(template.Body, input.MessageParams); len(missing) > 0 {
		log.Debug().Strs("missing_params", missing).Msg("placeholders sem valor ficaram no texto")
	}

	// 5. Envio (síncrono, dentro do timeout da requisição)
	providerID, err := uc.Sender.Send(ctx, user.ContactAddress, message)
	if err != nil {
		return nil, uc.fail(ctx, log, input, fmt.Errorf("falha no envio whatsapp: %w", err))
	}
	messageID := providerID
	if messageID == "" {
		messageID = SentIDPrefix + uc.IDs.NewID()
	}

	// 6. Tracking
	trackCtx, cancel := detached(ctx)
	defer cancel()
	if err := uc.Deliveries.Record(trackCtx, entity.NewSentRecord(messageID, input.UserID, uc.now())); err != nil {
		log.Error().Err(err).Str("message_id", messageID).Msg("⚠️ CRITICAL: mensagem enviada, mas sem registro de entrega")
		return nil, &TechnicalError{Code: CodeTrackingWriteFailed, Message: "Failed to track delivery", Err: err}
	}

	log.Info().Str("message_id", messageID).Msg("✅ WhatsApp enviado e registrado")
	return &DispatchMessageOutput{Success: true, MessageID: messageID}, nil
}

// abort encerra uma falha anterior ao envio, sem tracking.
func (uc *DispatchMessageUseCase) abort(log zerolog.Logger, cause error) error {
	log.Error().Err(cause).Msg("❌ Falha no dispatch antes do envio")
	return internalError(cause)
}

// fail grava o registro "failed" sem propagar erro do próprio tracking.
func (uc *DispatchMessageUseCase) fail(ctx context.Context, log zerolog.Logger, input DispatchMessageInput, cause error) error {
	log.Error().Err(cause).Msg("❌ Falha no dispatch")

	rec := entity.NewFailedRecord(FailedIDPrefix+uc.IDs.NewID(), input.UserID, cause.Error(), uc.now())

	trackCtx, cancel := detached(ctx)
	defer cancel()
	if err := uc.Deliveries.Record(trackCtx, rec); err != nil {
		log.Warn().Err(err).Str("message_id", rec.MessageID).Msg("⚠️ Não foi possível registrar a falha")
	}

	return internalError(cause)
}

func (uc *DispatchMessageUseCase) now() time.Time {
	if uc.Now == nil {
		return utcNow()
	}
	return uc.Now()
}

// detached mantém os valores do ctx mas ignora o cancelamento/timeout da requisição.
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), trackingWriteTimeout)
}

func missingParams(body string, params map[string]string) []string {
	var missing []string
	for _, name := range Placeholders(body) {
		if _, ok := params[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
