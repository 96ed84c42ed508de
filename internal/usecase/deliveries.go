package usecase

import (
	"context"

	"github.com/xavierca1/whatsapp-dispatch/internal/entity"
)

type ListDeliveriesUseCase struct {
	Repo entity.DeliveryRepository
}

func NewListDeliveriesUseCase(repo entity.DeliveryRepository) *ListDeliveriesUseCase {
	return &ListDeliveriesUseCase{Repo: repo}
}

// Execute devolve o histórico de entregas do usuário, mais recentes primeiro.
func (uc *ListDeliveriesUseCase) Execute(ctx context.Context, userID string) ([]*entity.DeliveryRecord, error) {
	if errs := ValidateInput(struct {
		UserID string `json:"user_id" validate:"required,uuid"`
	}{userID}); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	records, err := uc.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, internalError(err)
	}
	if records == nil {
		records = []*entity.DeliveryRecord{}
	}
	return records, nil
}
