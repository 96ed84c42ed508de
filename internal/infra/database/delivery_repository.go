package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/whatsapp-dispatch/internal/entity"
)

// DeliveryRepository é append-only: só INSERT e SELECT.
type DeliveryRepository struct {
	DB *sql.DB
}

func NewDeliveryRepository(db *sql.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

func (r *DeliveryRepository) Record(ctx context.Context, rec *entity.DeliveryRecord) error {
	if !rec.Status.Valid() {
		return fmt.Errorf("delivery_status inválido: %q", rec.Status)
	}

	query := `
		INSERT INTO whatsapp_delivery_tracking (message_id, user_id, delivery_status, error_message, sent_at)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		rec.MessageID,
		rec.UserID,
		string(rec.Status),
		rec.ErrorMessage,
		rec.SentAt,
	)
	if err != nil {
		if hasPQCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: %s", entity.ErrDuplicateMessageID, rec.MessageID)
		}
		return fmt.Errorf("erro ao registrar entrega: %w", err)
	}
	return nil
}

// ListByUser: mais recentes primeiro
func (r *DeliveryRepository) ListByUser(ctx context.Context, userID string) ([]*entity.DeliveryRecord, error) {
	query := `
		SELECT message_id, user_id, delivery_status, error_message, sent_at
		FROM whatsapp_delivery_tracking
		WHERE user_id = $1
		ORDER BY sent_at DESC, id DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar entregas: %w", err)
	}
	defer rows.Close()

	records := []*entity.DeliveryRecord{}
	for rows.Next() {
		var (
			rec    entity.DeliveryRecord
			uid    sql.NullString
			status string
			errMsg sql.NullString
		)
		if err := rows.Scan(&rec.MessageID, &uid, &status, &errMsg, &rec.SentAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear entrega: %w", err)
		}
		rec.UserID = uid.String
		rec.Status = entity.DeliveryStatus(status)
		if errMsg.Valid {
			msg := errMsg.String
			rec.ErrorMessage = &msg
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao buscar entregas: %w", err)
	}
	return records, nil
}
