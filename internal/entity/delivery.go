package entity

import (
	"context"
	"errors"
	"time"
)

var ErrDuplicateMessageID = errors.New("message_id já registrado")

type DeliveryStatus string

const (
	DeliveryStatusSent   DeliveryStatus = "sent"
	DeliveryStatusFailed DeliveryStatus = "failed"
)

func (s DeliveryStatus) Valid() bool {
	return s == DeliveryStatusSent || s == DeliveryStatusFailed
}

// DeliveryRecord é a trilha de auditoria de uma tentativa de envio.
// Append-only: nunca é atualizado nem apagado.
type DeliveryRecord struct {
	MessageID    string         `json:"message_id"`
	UserID       string         `json:"user_id,omitempty"`
	Status       DeliveryStatus `json:"delivery_status"`
	ErrorMessage *string        `json:"error_message"`
	SentAt       time.Time      `json:"sent_at"`
}

func NewSentRecord(messageID, userID string, at time.Time) *DeliveryRecord {
	return &DeliveryRecord{
		MessageID: messageID,
		UserID:    userID,
		Status:    DeliveryStatusSent,
		SentAt:    at,
	}
}

func NewFailedRecord(messageID, userID, errMsg string, at time.Time) *DeliveryRecord {
	if errMsg == "" {
		errMsg = "Unknown error"
	}
	return &DeliveryRecord{
		MessageID:    messageID,
		UserID:       userID,
		Status:       DeliveryStatusFailed,
		ErrorMessage: &errMsg,
		SentAt:       at,
	}
}

type DeliveryRepository interface {
	Record(ctx context.Context, r *DeliveryRecord) error
	ListByUser(ctx context.Context, userID string) ([]*DeliveryRecord, error)
}
