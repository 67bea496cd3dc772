// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"tally/internal/domain/entity"
	"tally/internal/domain/repository"
	"tally/internal/errors"
	"tally/internal/usecase"

	"github.com/google/uuid"
)

// merchantService implements the MerchantUsecase interface.
type merchantService struct {
	merchantRepo repository.MerchantRepository
	logger       *slog.Logger
}

// NewMerchantService is the constructor for merchantService.
func NewMerchantService(merchantRepo repository.MerchantRepository, logger *slog.Logger) usecase.MerchantUsecase {
	return &merchantService{
		merchantRepo: merchantRepo,
		logger:       logger,
	}
}

// List returns all of the owner's merchants in ascending creation order.
func (srv *merchantService) List(ctx context.Context, ownerUserID uuid.UUID) ([]*entity.Merchant, error) {
	merchants, err := srv.merchantRepo.FindByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchants")
	}

	return merchants, nil
}

// Create returns the existing merchant id for an exact name match, or
// inserts a new merchant. The check-then-insert is not atomic: two
// concurrent identical calls can both miss and both insert, leaving a
// duplicate-named merchant. That race is accepted; worst case is a
// redundant row, never corruption.
func (srv *merchantService) Create(ctx context.Context, ownerUserID uuid.UUID, name string) (uuid.UUID, error) {
	existing, err := srv.merchantRepo.FindByOwnerAndName(ctx, ownerUserID, name)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, repository.ErrMerchantNotFound) {
		return uuid.Nil, errors.Wrap(err, "failed to check for existing merchant")
	}

	merchant := &entity.Merchant{
		ID:          uuid.New(),
		Name:        name,
		OwnerUserID: ownerUserID,
	}

	if err := srv.merchantRepo.Create(ctx, merchant); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create merchant")
	}

	srv.logger.Info("Merchant created",
		slog.String("merchantID", merchant.ID.String()),
		slog.String("ownerUserID", ownerUserID.String()),
	)

	return merchant.ID, nil
}

// Search returns the owner's merchants whose name contains the query,
// compared case-insensitively. The empty query is a substring of every
// name, so it matches all merchants.
func (srv *merchantService) Search(ctx context.Context, ownerUserID uuid.UUID, query string) ([]*entity.Merchant, error) {
	merchants, err := srv.merchantRepo.FindByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search merchants")
	}

	needle := strings.ToLower(query)
	matched := make([]*entity.Merchant, 0, len(merchants))
	for _, merchant := range merchants {
		if strings.Contains(strings.ToLower(merchant.Name), needle) {
			matched = append(matched, merchant)
		}
	}

	return matched, nil
}
