package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/xavierca1/whatsapp-dispatch/internal/entity"
)

type CreateTemplateUseCase struct {
	Repo entity.TemplateRepository
	Log  zerolog.Logger
}

func NewCreateTemplateUseCase(repo entity.TemplateRepository, log zerolog.Logger) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{Repo: repo, Log: log}
}

func (uc *CreateTemplateUseCase) Execute(ctx context.Context, input CreateTemplateInput) (*TemplateOutput, error) {
	if errs := ValidateInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	template, err := entity.NewTemplate(input.TrustID, input.TemplateName, input.TemplateContent)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: "validation failed: " + err.Error()}
	}

	if err := uc.Repo.Create(ctx, template); err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "failed to persist template", Err: err}
	}

	uc.Log.Info().
		Str("template_id", template.ID).
		Str("trust_id", template.OrganizationID).
		Strs("placeholders", Placeholders(template.Body)).
		Msg("📝 Template criado")

	return newTemplateOutput(template), nil
}

type ListTemplatesUseCase struct {
	Repo entity.TemplateRepository
}

func NewListTemplatesUseCase(repo entity.TemplateRepository) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{Repo: repo}
}

// Execute devolve os templates do trust, mais novos primeiro. Nunca devolve nil.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context, trustID string) ([]*TemplateOutput, error) {
	if errs := ValidateInput(struct {
		TrustID string `json:"trust_id" validate:"required,uuid"`
	}{trustID}); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	templates, err := uc.Repo.ListByOrganization(ctx, trustID)
	if err != nil {
		return nil, internalError(err)
	}

	out := make([]*TemplateOutput, 0, len(templates))
	for _, t := range templates {
		out = append(out, newTemplateOutput(t))
	}
	return out, nil
}

type GetTemplateUseCase struct {
	Repo entity.TemplateRepository
}

func NewGetTemplateUseCase(repo entity.TemplateRepository) *GetTemplateUseCase {
	return &GetTemplateUseCase{Repo: repo}
}

func (uc *GetTemplateUseCase) Execute(ctx context.Context, templateID string) (*TemplateOutput, error) {
	if errs := ValidateInput(struct {
		TemplateID string `json:"template_id" validate:"required,uuid"`
	}{templateID}); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	template, err := uc.Repo.FindByID(ctx, templateID)
	if errors.Is(err, entity.ErrTemplateNotFound) {
		return nil, &DomainError{Code: CodeTemplateNotFound, Message: "Template not found"}
	}
	if err != nil {
		return nil, internalError(err)
	}
	return newTemplateOutput(template), nil
}
