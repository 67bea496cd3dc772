package service

import (
	"context"
)

// ReceiptCreatedEvent is emitted after a receipt has been stored, for
// downstream consumers (export pipelines, spend analytics).
type ReceiptCreatedEvent struct {
	RequestID    string   `json:"request_id,omitempty"` // For distributed tracing
	ReceiptID    string   `json:"receipt_id"`
	OwnerUserID  string   `json:"owner_user_id"`
	MerchantID   string   `json:"merchant_id"`
	PurchaseDate string   `json:"purchase_date"`
	InvoiceTotal float64  `json:"invoice_total"`
	ImageIDs     []string `json:"image_ids,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishReceiptCreated publishes a receipt-created event for async processing.
	PublishReceiptCreated(ctx context.Context, event *ReceiptCreatedEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
