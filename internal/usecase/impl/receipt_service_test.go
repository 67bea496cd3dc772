package impl

import (
	"context"
	"errors"
	"testing"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/domain/service"
	mockRepo "tally/internal/mocks/repository"
	mockSvc "tally/internal/mocks/service"
	"tally/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type receiptServiceMocks struct {
	receiptRepo  *mockRepo.MockReceiptRepository
	merchantRepo *mockRepo.MockMerchantRepository
	blobs        *mockSvc.MockBlobStorage
	publisher    *mockSvc.MockEventPublisher
}

func newReceiptService(t *testing.T) (usecase.ReceiptUsecase, *receiptServiceMocks) {
	mocks := &receiptServiceMocks{
		receiptRepo:  mockRepo.NewMockReceiptRepository(t),
		merchantRepo: mockRepo.NewMockMerchantRepository(t),
		blobs:        mockSvc.NewMockBlobStorage(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	service := NewReceiptService(
		mocks.receiptRepo,
		mocks.merchantRepo,
		mocks.blobs,
		mocks.publisher,
		newTestLogger(),
	)

	return service, mocks
}

func TestReceiptService_List_EnrichesMerchantAndImages(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	merchant := &entity.Merchant{ID: uuid.New(), Name: "Acme Corp", OwnerUserID: ownerID}
	receipts := []*entity.Receipt{
		{ID: uuid.New(), MerchantID: merchant.ID, PurchaseDate: "2024-03-01", InvoiceTotal: 42, ImageIDs: []string{"img-1"}, OwnerUserID: ownerID},
		{ID: uuid.New(), MerchantID: merchant.ID, PurchaseDate: "2024-01-05", InvoiceTotal: 9.5, OwnerUserID: ownerID},
	}

	mocks.receiptRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(receipts, nil)

	// Both receipts share a merchant; the lookup is memoized per call.
	mocks.merchantRepo.EXPECT().
		FindByID(ctx, merchant.ID).
		Return(merchant, nil).
		Once()

	imageURL := "https://blobs.example.com/img-1"
	mocks.blobs.EXPECT().
		ResolveURL(ctx, "img-1").
		Return(&imageURL, nil)

	enriched, err := svc.List(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, enriched, 2)
	assert.Equal(t, "Acme Corp", enriched[0].Merchant)
	assert.Equal(t, "Acme Corp", enriched[1].Merchant)
	require.Len(t, enriched[0].Images, 1)
	require.NotNil(t, enriched[0].Images[0].URL)
	assert.Equal(t, imageURL, *enriched[0].Images[0].URL)
	assert.Empty(t, enriched[1].Images)
}

func TestReceiptService_List_MissingMerchantDisplaysUnknown(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	deadMerchantID := uuid.New()
	receipts := []*entity.Receipt{
		{ID: uuid.New(), MerchantID: deadMerchantID, PurchaseDate: "2024-03-01", InvoiceTotal: 42, OwnerUserID: ownerID},
	}

	mocks.receiptRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(receipts, nil)

	mocks.merchantRepo.EXPECT().
		FindByID(ctx, deadMerchantID).
		Return(nil, repository.ErrMerchantNotFound)

	enriched, err := svc.List(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	assert.Equal(t, "Unknown", enriched[0].Merchant)
}

func TestReceiptService_List_MissingBlobYieldsNullURL(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	merchant := &entity.Merchant{ID: uuid.New(), Name: "Acme Corp", OwnerUserID: ownerID}
	receipts := []*entity.Receipt{
		{ID: uuid.New(), MerchantID: merchant.ID, PurchaseDate: "2024-03-01", InvoiceTotal: 42, ImageIDs: []string{"gone"}, OwnerUserID: ownerID},
	}

	mocks.receiptRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(receipts, nil)

	mocks.merchantRepo.EXPECT().
		FindByID(ctx, merchant.ID).
		Return(merchant, nil)

	// A blob that no longer resolves degrades to a null URL, never an error.
	mocks.blobs.EXPECT().
		ResolveURL(ctx, "gone").
		Return(nil, nil)

	enriched, err := svc.List(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	require.Len(t, enriched[0].Images, 1)
	assert.Equal(t, "gone", enriched[0].Images[0].ID)
	assert.Nil(t, enriched[0].Images[0].URL)
}

func TestReceiptService_Create_Success(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateReceiptInput{
		MerchantID:   uuid.New(),
		PurchaseDate: "2024-03-01",
		InvoiceTotal: 42,
		ImageIDs:     []string{"img-1", "img-2"},
	}

	var created *entity.Receipt
	mocks.receiptRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Receipt")).
		Run(func(ctx context.Context, receipt *entity.Receipt) {
			created = receipt
		}).
		Return(nil)

	var published *service.ReceiptCreatedEvent
	mocks.publisher.EXPECT().
		PublishReceiptCreated(ctx, mock.AnythingOfType("*service.ReceiptCreatedEvent")).
		Run(func(ctx context.Context, event *service.ReceiptCreatedEvent) {
			published = event
		}).
		Return(nil)

	receiptID, err := svc.Create(ctx, ownerID, input)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, receiptID)
	assert.Equal(t, input.MerchantID, created.MerchantID)
	assert.Equal(t, "2024-03-01", created.PurchaseDate)
	assert.Equal(t, ownerID, created.OwnerUserID)
	assert.Equal(t, []string{"img-1", "img-2"}, created.ImageIDs)

	require.NotNil(t, published)
	assert.Equal(t, receiptID.String(), published.ReceiptID)
	assert.Equal(t, ownerID.String(), published.OwnerUserID)
	assert.Equal(t, input.MerchantID.String(), published.MerchantID)
	assert.Equal(t, "2024-03-01", published.PurchaseDate)
	assert.Equal(t, float64(42), published.InvoiceTotal)
	assert.Equal(t, []string{"img-1", "img-2"}, published.ImageIDs)
}

func TestReceiptService_Create_StoresValuesVerbatim(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	// No format or range checks at this layer.
	input := &usecase.CreateReceiptInput{
		MerchantID:   uuid.New(),
		PurchaseDate: "03/15/2024",
		InvoiceTotal: -5,
	}

	var created *entity.Receipt
	mocks.receiptRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Receipt")).
		Run(func(ctx context.Context, receipt *entity.Receipt) {
			created = receipt
		}).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishReceiptCreated(ctx, mock.AnythingOfType("*service.ReceiptCreatedEvent")).
		Return(nil)

	_, err := svc.Create(ctx, ownerID, input)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "03/15/2024", created.PurchaseDate)
	assert.Equal(t, float64(-5), created.InvoiceTotal)
}

func TestReceiptService_Create_PublishFailureDoesNotFailCreate(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateReceiptInput{
		MerchantID:   uuid.New(),
		PurchaseDate: "2024-03-01",
		InvoiceTotal: 42,
	}

	mocks.receiptRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Receipt")).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishReceiptCreated(ctx, mock.AnythingOfType("*service.ReceiptCreatedEvent")).
		Return(errors.New("broker unavailable"))

	receiptID, err := svc.Create(ctx, ownerID, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, receiptID)
}

func TestReceiptService_Create_RepoError(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateReceiptInput{
		MerchantID:   uuid.New(),
		PurchaseDate: "2024-03-01",
		InvoiceTotal: 42,
	}

	// No publish expectation: a failed write emits no event.
	mocks.receiptRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Receipt")).
		Return(errors.New("database error"))

	receiptID, err := svc.Create(ctx, ownerID, input)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, receiptID)
	assert.Contains(t, err.Error(), "failed to create receipt")
}

func TestReceiptService_Search_DateFilterIsExact(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	merchant := &entity.Merchant{ID: uuid.New(), Name: "Acme Corp", OwnerUserID: ownerID}
	target := &entity.Receipt{ID: uuid.New(), MerchantID: merchant.ID, PurchaseDate: "2024-03-01", InvoiceTotal: 42, OwnerUserID: ownerID}
	other := &entity.Receipt{ID: uuid.New(), MerchantID: merchant.ID, PurchaseDate: "2024-03-02", InvoiceTotal: 9.5, OwnerUserID: ownerID}

	mocks.receiptRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return([]*entity.Receipt{target, other}, nil)

	mocks.merchantRepo.EXPECT().
		FindByID(ctx, merchant.ID).
		Return(merchant, nil)

	matched, err := svc.Search(ctx, ownerID, "", "2024-03-01")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, target.ID, matched[0].ID)
}

func TestReceiptService_Search_TextMatchesMerchantName(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	acme := &entity.Merchant{ID: uuid.New(), Name: "Acme Corp", OwnerUserID: ownerID}
	bodega := &entity.Merchant{ID: uuid.New(), Name: "Corner Bodega", OwnerUserID: ownerID}
	receipts := []*entity.Receipt{
		{ID: uuid.New(), MerchantID: acme.ID, PurchaseDate: "2024-03-01", InvoiceTotal: 42, OwnerUserID: ownerID},
		{ID: uuid.New(), MerchantID: bodega.ID, PurchaseDate: "2024-03-02", InvoiceTotal: 9.5, OwnerUserID: ownerID},
	}

	mocks.receiptRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(receipts, nil)

	mocks.merchantRepo.EXPECT().
		FindByID(ctx, acme.ID).
		Return(acme, nil)
	mocks.merchantRepo.EXPECT().
		FindByID(ctx, bodega.ID).
		Return(bodega, nil)

	matched, err := svc.Search(ctx, ownerID, "ACME", "")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Acme Corp", matched[0].Merchant)
}

func TestReceiptService_Search_TextMatchesRenderedTotal(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	merchant := &entity.Merchant{ID: uuid.New(), Name: "Acme Corp", OwnerUserID: ownerID}
	receipts := []*entity.Receipt{
		{ID: uuid.New(), MerchantID: merchant.ID, PurchaseDate: "2024-03-01", InvoiceTotal: 42, OwnerUserID: ownerID},
		{ID: uuid.New(), MerchantID: merchant.ID, PurchaseDate: "2024-03-02", InvoiceTotal: 9.5, OwnerUserID: ownerID},
	}

	mocks.receiptRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(receipts, nil)

	mocks.merchantRepo.EXPECT().
		FindByID(ctx, merchant.ID).
		Return(merchant, nil).
		Once()

	// An integral total still renders with two decimals, so "42.00" hits.
	matched, err := svc.Search(ctx, ownerID, "42.00", "")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, float64(42), matched[0].InvoiceTotal)
}

func TestReceiptService_Search_MissingMerchantContributesNoName(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	deadMerchantID := uuid.New()
	receipts := []*entity.Receipt{
		{ID: uuid.New(), MerchantID: deadMerchantID, PurchaseDate: "2024-03-01", InvoiceTotal: 42, OwnerUserID: ownerID},
	}

	mocks.receiptRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(receipts, nil)

	mocks.merchantRepo.EXPECT().
		FindByID(ctx, deadMerchantID).
		Return(nil, repository.ErrMerchantNotFound)

	// "Unknown" is a display fallback, not searchable text.
	matched, err := svc.Search(ctx, ownerID, "unknown", "")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestReceiptService_Search_SortsByParsedDateDescending(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	merchant := &entity.Merchant{ID: uuid.New(), Name: "Acme Corp", OwnerUserID: ownerID}
	receipts := []*entity.Receipt{
		{ID: uuid.New(), MerchantID: merchant.ID, PurchaseDate: "2024-01-05", InvoiceTotal: 1, OwnerUserID: ownerID},
		{ID: uuid.New(), MerchantID: merchant.ID, PurchaseDate: "2023-12-31", InvoiceTotal: 2, OwnerUserID: ownerID},
		{ID: uuid.New(), MerchantID: merchant.ID, PurchaseDate: "2024-03-01", InvoiceTotal: 3, OwnerUserID: ownerID},
	}

	mocks.receiptRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(receipts, nil)

	mocks.merchantRepo.EXPECT().
		FindByID(ctx, merchant.ID).
		Return(merchant, nil).
		Once()

	matched, err := svc.Search(ctx, ownerID, "", "")
	require.NoError(t, err)
	require.Len(t, matched, 3)
	assert.Equal(t, "2024-03-01", matched[0].PurchaseDate)
	assert.Equal(t, "2024-01-05", matched[1].PurchaseDate)
	assert.Equal(t, "2023-12-31", matched[2].PurchaseDate)
}

func TestReceiptService_Search_MalformedDateSinksLast(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	merchant := &entity.Merchant{ID: uuid.New(), Name: "Acme Corp", OwnerUserID: ownerID}
	receipts := []*entity.Receipt{
		{ID: uuid.New(), MerchantID: merchant.ID, PurchaseDate: "03/15/2024", InvoiceTotal: 1, OwnerUserID: ownerID},
		{ID: uuid.New(), MerchantID: merchant.ID, PurchaseDate: "2023-12-31", InvoiceTotal: 2, OwnerUserID: ownerID},
		{ID: uuid.New(), MerchantID: merchant.ID, PurchaseDate: "2024-03-01", InvoiceTotal: 3, OwnerUserID: ownerID},
	}

	mocks.receiptRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(receipts, nil)

	mocks.merchantRepo.EXPECT().
		FindByID(ctx, merchant.ID).
		Return(merchant, nil).
		Once()

	matched, err := svc.Search(ctx, ownerID, "", "")
	require.NoError(t, err)
	require.Len(t, matched, 3)
	assert.Equal(t, "2024-03-01", matched[0].PurchaseDate)
	assert.Equal(t, "2023-12-31", matched[1].PurchaseDate)
	assert.Equal(t, "03/15/2024", matched[2].PurchaseDate)
}

func TestReceiptService_GenerateUploadURL(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()
	expected := &service.UploadTarget{BlobID: "blob-1", URL: "https://blobs.example.com/blob-1?sig=abc"}

	mocks.blobs.EXPECT().
		CreateUploadTarget(ctx).
		Return(expected, nil)

	target, err := svc.GenerateUploadURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, target)
}

func TestReceiptService_GenerateUploadURL_Error(t *testing.T) {
	svc, mocks := newReceiptService(t)

	ctx := context.Background()

	mocks.blobs.EXPECT().
		CreateUploadTarget(ctx).
		Return(nil, errors.New("bucket unavailable"))

	target, err := svc.GenerateUploadURL(ctx)
	require.Error(t, err)
	assert.Nil(t, target)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPLOAD_FAILED", appErr.ErrorCode())
}
