package repository

import (
	"context"

	"tally/internal/domain/entity"
	"tally/internal/errors"

	"github.com/google/uuid"
)

// ErrReceiptNotFound is returned when a receipt is not found.
var ErrReceiptNotFound = errors.New("receipt not found")

// ReceiptRepository defines the interface for receipt-related database operations.
// Every read is scoped to a single owning user; no query may cross owners.
type ReceiptRepository interface {
	// Create persists a new receipt for an owner.
	Create(ctx context.Context, receipt *entity.Receipt) error

	// FindByID retrieves a receipt by its unique ID.
	// Returns ErrReceiptNotFound if no such receipt exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)

	// FindByOwner retrieves all receipts for an owner ordered by the raw
	// purchase_date column descending (lexicographic on the ISO string).
	FindByOwner(ctx context.Context, ownerUserID uuid.UUID) ([]*entity.Receipt, error)
}
