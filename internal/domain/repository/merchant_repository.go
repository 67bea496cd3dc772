// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"tally/internal/domain/entity"
	"tally/internal/errors"

	"github.com/google/uuid"
)

// ErrMerchantNotFound is returned when a merchant is not found.
var ErrMerchantNotFound = errors.New("merchant not found")

// MerchantRepository defines the interface for merchant-related database operations.
// Every read is scoped to a single owning user; no query may cross owners.
type MerchantRepository interface {
	// Create persists a new merchant for an owner.
	Create(ctx context.Context, merchant *entity.Merchant) error

	// FindByID retrieves a merchant by its unique ID.
	// Returns ErrMerchantNotFound if no such merchant exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)

	// FindByOwner retrieves all merchants for an owner in ascending creation order.
	FindByOwner(ctx context.Context, ownerUserID uuid.UUID) ([]*entity.Merchant, error)

	// FindByOwnerAndName retrieves the owner's merchant with the exact stored name.
	// Returns ErrMerchantNotFound if no such merchant exists.
	FindByOwnerAndName(ctx context.Context, ownerUserID uuid.UUID, name string) (*entity.Merchant, error)
}
