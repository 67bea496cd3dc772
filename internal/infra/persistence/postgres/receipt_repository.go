package postgres

import (
	"context"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// receiptRepository implements the domain.ReceiptRepository interface using GORM.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository is the constructor for receiptRepository.
func NewReceiptRepository(db *gorm.DB) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

// Create persists a new receipt for an owner.
func (repo *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	receiptM := fromReceiptDomain(receipt)

	if err := repo.db.WithContext(ctx).Create(receiptM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create receipt")
	}

	// Update the entity with generated values
	receipt.ID = receiptM.ID
	receipt.CreatedAt = receiptM.CreatedAt

	return nil
}

// FindByID retrieves a receipt by its unique ID.
func (repo *receiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receiptM model.ReceiptModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&receiptM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReceiptNotFound
		}

		return nil, errors.Wrap(err, "failed to find receipt by id")
	}

	return toReceiptDomain(&receiptM), nil
}

// FindByOwner retrieves all receipts for an owner ordered by purchase_date
// descending. The column is the raw ISO string, so the DB-level order is
// lexicographic; zero-padded "YYYY-MM-DD" values make that chronological.
func (repo *receiptRepository) FindByOwner(ctx context.Context, ownerUserID uuid.UUID) ([]*entity.Receipt, error) {
	var receiptModels []*model.ReceiptModel
	err := repo.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Order("purchase_date DESC").
		Find(&receiptModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find receipts by owner")
	}

	receipts := make([]*entity.Receipt, 0, len(receiptModels))
	for _, receiptM := range receiptModels {
		receipts = append(receipts, toReceiptDomain(receiptM))
	}

	return receipts, nil
}

// --- Mapper Functions ---

// toReceiptDomain converts a GORM ReceiptModel to a domain Receipt entity.
func toReceiptDomain(data *model.ReceiptModel) *entity.Receipt {
	if data == nil {
		return nil
	}

	return &entity.Receipt{
		ID:           data.ID,
		MerchantID:   data.MerchantID,
		PurchaseDate: data.PurchaseDate,
		InvoiceTotal: data.InvoiceTotal,
		ImageIDs:     []string(data.ImageIDs),
		OwnerUserID:  data.OwnerUserID,
		CreatedAt:    data.CreatedAt,
	}
}

// fromReceiptDomain converts a domain Receipt entity to a GORM ReceiptModel.
func fromReceiptDomain(data *entity.Receipt) *model.ReceiptModel {
	if data == nil {
		return nil
	}

	return &model.ReceiptModel{
		ID:           data.ID,
		MerchantID:   data.MerchantID,
		PurchaseDate: data.PurchaseDate,
		InvoiceTotal: data.InvoiceTotal,
		ImageIDs:     datatypes.NewJSONSlice(data.ImageIDs),
		OwnerUserID:  data.OwnerUserID,
		CreatedAt:    data.CreatedAt,
	}
}
