package postgres

import (
	"context"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// merchantRepository implements the domain.MerchantRepository interface using GORM.
type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository is the constructor for merchantRepository.
func NewMerchantRepository(db *gorm.DB) repository.MerchantRepository {
	return &merchantRepository{db: db}
}

// Create persists a new merchant for an owner.
func (repo *merchantRepository) Create(ctx context.Context, merchant *entity.Merchant) error {
	merchantM := fromMerchantDomain(merchant)

	if err := repo.db.WithContext(ctx).Create(merchantM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create merchant")
	}

	// Update the entity with generated values
	merchant.ID = merchantM.ID
	merchant.CreatedAt = merchantM.CreatedAt

	return nil
}

// FindByID retrieves a merchant by its unique ID.
func (repo *merchantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	var merchantM model.MerchantModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&merchantM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by id")
	}

	return toMerchantDomain(&merchantM), nil
}

// FindByOwner retrieves all merchants for an owner, oldest first.
// The ascending creation order is observable: merchant pickers rely on it.
func (repo *merchantRepository) FindByOwner(ctx context.Context, ownerUserID uuid.UUID) ([]*entity.Merchant, error) {
	var merchantModels []*model.MerchantModel
	err := repo.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Order("created_at ASC").
		Find(&merchantModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find merchants by owner")
	}

	merchants := make([]*entity.Merchant, 0, len(merchantModels))
	for _, merchantM := range merchantModels {
		merchants = append(merchants, toMerchantDomain(merchantM))
	}

	return merchants, nil
}

// FindByOwnerAndName retrieves the owner's merchant with the exact stored name.
func (repo *merchantRepository) FindByOwnerAndName(ctx context.Context, ownerUserID uuid.UUID, name string) (*entity.Merchant, error) {
	var merchantM model.MerchantModel
	err := repo.db.WithContext(ctx).
		Where("owner_user_id = ? AND name = ?", ownerUserID, name).
		Order("created_at ASC").
		First(&merchantM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by owner and name")
	}

	return toMerchantDomain(&merchantM), nil
}

// --- Mapper Functions ---

// toMerchantDomain converts a GORM MerchantModel to a domain Merchant entity.
func toMerchantDomain(data *model.MerchantModel) *entity.Merchant {
	if data == nil {
		return nil
	}

	return &entity.Merchant{
		ID:          data.ID,
		Name:        data.Name,
		OwnerUserID: data.OwnerUserID,
		CreatedAt:   data.CreatedAt,
	}
}

// fromMerchantDomain converts a domain Merchant entity to a GORM MerchantModel.
func fromMerchantDomain(data *entity.Merchant) *model.MerchantModel {
	if data == nil {
		return nil
	}

	return &model.MerchantModel{
		ID:          data.ID,
		Name:        data.Name,
		OwnerUserID: data.OwnerUserID,
		CreatedAt:   data.CreatedAt,
	}
}
