package usecase

import (
	"context"
	"time"

	"tally/internal/domain/service"

	"github.com/google/uuid"
)

// ReceiptUsecase defines the interface for receipt-related business operations.
type ReceiptUsecase interface {
	// List returns all of the owner's receipts, newest purchase date first,
	// each enriched with the merchant display name and resolved image URLs.
	List(ctx context.Context, ownerUserID uuid.UUID) ([]*EnrichedReceipt, error)

	// Create stores a new receipt for the owner and returns its id. No
	// date-format or amount validation happens at this layer; values are
	// stored as given.
	Create(ctx context.Context, ownerUserID uuid.UUID, input *CreateReceiptInput) (uuid.UUID, error)

	// Search filters the owner's receipts by an exact purchase date and/or
	// a free-text query matched against the merchant name, the raw date
	// string and the rendered total. Results are enriched like List and
	// sorted by parsed calendar date, newest first.
	Search(ctx context.Context, ownerUserID uuid.UUID, query, date string) ([]*EnrichedReceipt, error)

	// GenerateUploadURL mints a one-time signed upload target for a
	// receipt image.
	GenerateUploadURL(ctx context.Context) (*service.UploadTarget, error)
}

// --- Input / Output DTOs ---

// CreateReceiptInput defines the data required to record a receipt.
// MerchantID is trusted to come from the caller's own merchant list; the
// service does not re-verify its ownership.
type CreateReceiptInput struct {
	MerchantID   uuid.UUID `json:"merchant_id"`
	PurchaseDate string    `json:"purchase_date"`
	InvoiceTotal float64   `json:"invoice_total"`
	ImageIDs     []string  `json:"image_ids"`
}

// ReceiptImage pairs a stored blob id with its current display URL.
// URL is null when the blob no longer resolves; that is a degraded entry,
// never an error.
type ReceiptImage struct {
	ID  string  `json:"id"`
	URL *string `json:"url"`
}

// EnrichedReceipt is a receipt augmented at read time with its merchant's
// display name and resolved image URLs.
type EnrichedReceipt struct {
	ID           uuid.UUID      `json:"id"`
	MerchantID   uuid.UUID      `json:"merchant_id"`
	Merchant     string         `json:"merchant"`
	PurchaseDate string         `json:"purchase_date"`
	InvoiceTotal float64        `json:"invoice_total"`
	Images       []ReceiptImage `json:"images"`
	CreatedAt    time.Time      `json:"created_at"`
}
