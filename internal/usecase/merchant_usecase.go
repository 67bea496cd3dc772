// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"tally/internal/domain/entity"

	"github.com/google/uuid"
)

// MerchantUsecase defines the interface for merchant-related business operations.
// Every operation is scoped to the resolved owner; callers never see another
// user's merchants.
type MerchantUsecase interface {
	// List returns all of the owner's merchants in ascending creation order.
	List(ctx context.Context, ownerUserID uuid.UUID) ([]*entity.Merchant, error)

	// Create returns the id of the owner's merchant with the given name,
	// inserting a new record only when no exact (case-sensitive) match
	// exists. Calling it twice with the same name yields the same id.
	Create(ctx context.Context, ownerUserID uuid.UUID, name string) (uuid.UUID, error)

	// Search returns the owner's merchants whose name contains the query as
	// a case-insensitive substring. An empty query matches every merchant.
	Search(ctx context.Context, ownerUserID uuid.UUID, query string) ([]*entity.Merchant, error)
}
