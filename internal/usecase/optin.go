package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/xavierca1/whatsapp-dispatch/internal/entity"
)

// SetOptInUseCase grava o consentimento (checkbox do cadastro). Idempotente.
type SetOptInUseCase struct {
	Repo entity.OptInRepository
	Log  zerolog.Logger
}

func NewSetOptInUseCase(repo entity.OptInRepository, log zerolog.Logger) *SetOptInUseCase {
	return &SetOptInUseCase{Repo: repo, Log: log}
}

func (uc *SetOptInUseCase) Execute(ctx context.Context, input SetOptInInput) (*OptInOutput, error) {
	if errs := ValidateInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	optIn := entity.NewOptIn(input.UserID, *input.OptedIn)
	if err := uc.Repo.Upsert(ctx, optIn); err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "failed to store opt-in", Err: err}
	}

	uc.Log.Info().Str("user_id", optIn.UserID).Bool("opted_in", optIn.OptedIn).Msg("📱 Opt-in WhatsApp atualizado")
	return &OptInOutput{UserID: optIn.UserID, OptedIn: optIn.OptedIn}, nil
}

type GetOptInUseCase struct {
	Repo entity.OptInRepository
}

func NewGetOptInUseCase(repo entity.OptInRepository) *GetOptInUseCase {
	return &GetOptInUseCase{Repo: repo}
}

func (uc *GetOptInUseCase) Execute(ctx context.Context, userID string) (*OptInOutput, error) {
	if errs := ValidateInput(struct {
		UserID string `json:"user_id" validate:"required,uuid"`
	}{userID}); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	optIn, err := uc.Repo.FindByUserID(ctx, userID)
	if errors.Is(err, entity.ErrOptInNotFound) {
		return nil, &DomainError{Code: CodeOptInNotFound, Message: "Opt-in not found"}
	}
	if err != nil {
		return nil, internalError(err)
	}
	return &OptInOutput{UserID: optIn.UserID, OptedIn: optIn.OptedIn}, nil
}
