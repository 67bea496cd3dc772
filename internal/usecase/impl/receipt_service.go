package impl

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	deliverycontext "tally/internal/delivery/context"
	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/domain/service"
	"tally/internal/errors"
	"tally/internal/usecase"

	"github.com/google/uuid"
)

// unknownMerchant is the display fallback when a receipt's merchant
// reference no longer resolves.
const unknownMerchant = "Unknown"

// receiptService implements the ReceiptUsecase interface.
type receiptService struct {
	receiptRepo  repository.ReceiptRepository
	merchantRepo repository.MerchantRepository
	blobs        service.BlobStorage
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewReceiptService is the constructor for receiptService.
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	merchantRepo repository.MerchantRepository,
	blobs service.BlobStorage,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ReceiptUsecase {
	return &receiptService{
		receiptRepo:  receiptRepo,
		merchantRepo: merchantRepo,
		blobs:        blobs,
		publisher:    publisher,
		logger:       logger,
	}
}

// List returns the owner's receipts enriched for display. Ordering comes
// from the store: purchase_date descending, lexicographic on the ISO
// string, which is chronological for well-formed dates.
func (srv *receiptService) List(ctx context.Context, ownerUserID uuid.UUID) ([]*usecase.EnrichedReceipt, error) {
	receipts, err := srv.receiptRepo.FindByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list receipts")
	}

	names := newMerchantNameCache(srv.merchantRepo)
	enriched := make([]*usecase.EnrichedReceipt, 0, len(receipts))
	for _, receipt := range receipts {
		name, found, err := names.lookup(ctx, receipt.MerchantID)
		if err != nil {
			return nil, err
		}
		if !found {
			name = unknownMerchant
		}

		item, err := srv.enrich(ctx, receipt, name)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, item)
	}

	return enriched, nil
}

// Create stores a receipt exactly as given. Values are not range- or
// format-checked here, and the merchant reference is trusted to come from
// the caller's own merchant list.
func (srv *receiptService) Create(ctx context.Context, ownerUserID uuid.UUID, input *usecase.CreateReceiptInput) (uuid.UUID, error) {
	receipt := &entity.Receipt{
		ID:           uuid.New(),
		MerchantID:   input.MerchantID,
		PurchaseDate: input.PurchaseDate,
		InvoiceTotal: input.InvoiceTotal,
		ImageIDs:     input.ImageIDs,
		OwnerUserID:  ownerUserID,
	}

	if err := srv.receiptRepo.Create(ctx, receipt); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create receipt")
	}

	// Best effort: the event stream is a supplement, never part of the
	// write path. A publish failure is logged and the create still
	// succeeds.
	event := &service.ReceiptCreatedEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		ReceiptID:    receipt.ID.String(),
		OwnerUserID:  ownerUserID.String(),
		MerchantID:   receipt.MerchantID.String(),
		PurchaseDate: receipt.PurchaseDate,
		InvoiceTotal: receipt.InvoiceTotal,
		ImageIDs:     receipt.ImageIDs,
	}
	if err := srv.publisher.PublishReceiptCreated(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish receipt-created event",
			slog.String("receiptID", receipt.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return receipt.ID, nil
}

// Search scans the owner's receipts applying the date filter, then the
// free-text filter, then enriches and re-sorts the survivors.
//
// Sorting here parses the calendar date instead of reusing the store's
// lexicographic order. The two agree for well-formed "YYYY-MM-DD" values;
// a malformed date parses to the zero time and sinks to the end of the
// descending sort. Both behaviors are kept deliberately distinct.
func (srv *receiptService) Search(ctx context.Context, ownerUserID uuid.UUID, query, date string) ([]*usecase.EnrichedReceipt, error) {
	receipts, err := srv.receiptRepo.FindByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search receipts")
	}

	needle := strings.ToLower(query)
	names := newMerchantNameCache(srv.merchantRepo)
	matched := make([]*usecase.EnrichedReceipt, 0, len(receipts))

	for _, receipt := range receipts {
		// A date filter requires an exact match on the raw stored string.
		if date != "" && receipt.PurchaseDate != date {
			continue
		}

		name, found, err := names.lookup(ctx, receipt.MerchantID)
		if err != nil {
			return nil, err
		}

		// The text filter matches the merchant name case-insensitively,
		// or the raw date string, or the total rendered as a decimal
		// string. A dead merchant reference contributes no name to match
		// against.
		if needle != "" {
			matchesText := strings.Contains(strings.ToLower(name), needle) ||
				strings.Contains(receipt.PurchaseDate, needle) ||
				strings.Contains(renderTotal(receipt.InvoiceTotal), needle)
			if !matchesText {
				continue
			}
		}

		if !found {
			name = unknownMerchant
		}

		item, err := srv.enrich(ctx, receipt, name)
		if err != nil {
			return nil, err
		}
		matched = append(matched, item)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return parsePurchaseDate(matched[i].PurchaseDate).After(parsePurchaseDate(matched[j].PurchaseDate))
	})

	return matched, nil
}

// GenerateUploadURL mints a one-time signed upload target.
func (srv *receiptService) GenerateUploadURL(ctx context.Context) (*service.UploadTarget, error) {
	target, err := srv.blobs.CreateUploadTarget(ctx)
	if err != nil {
		return nil, domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	return target, nil
}

// enrich attaches the merchant display name and resolved image URLs to a
// receipt. An unresolvable blob yields a null URL entry in place, never an
// error; the entry order follows the stored image id order.
func (srv *receiptService) enrich(ctx context.Context, receipt *entity.Receipt, merchantName string) (*usecase.EnrichedReceipt, error) {
	images := make([]usecase.ReceiptImage, 0, len(receipt.ImageIDs))
	for _, imageID := range receipt.ImageIDs {
		url, err := srv.blobs.ResolveURL(ctx, imageID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve image %s", imageID)
		}
		images = append(images, usecase.ReceiptImage{ID: imageID, URL: url})
	}

	return &usecase.EnrichedReceipt{
		ID:           receipt.ID,
		MerchantID:   receipt.MerchantID,
		Merchant:     merchantName,
		PurchaseDate: receipt.PurchaseDate,
		InvoiceTotal: receipt.InvoiceTotal,
		Images:       images,
		CreatedAt:    receipt.CreatedAt,
	}, nil
}

// renderTotal renders an invoice total with two decimal places so queries
// like "42.00" match by plain substring containment.
func renderTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', 2, 64)
}

// parsePurchaseDate parses a stored "YYYY-MM-DD" value. Malformed input
// returns the zero time, which orders after every real date in a
// descending sort.
func parsePurchaseDate(raw string) time.Time {
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}
	}

	return t
}

// merchantNameCache memoizes merchant lookups for the duration of one
// request; a result list usually repeats a handful of merchants.
type merchantNameCache struct {
	repo  repository.MerchantRepository
	names map[uuid.UUID]*string
}

func newMerchantNameCache(repo repository.MerchantRepository) *merchantNameCache {
	return &merchantNameCache{
		repo:  repo,
		names: make(map[uuid.UUID]*string),
	}
}

// lookup returns the merchant's name and whether the reference resolved.
// A missing merchant is memoized too, as a degraded state rather than an
// error.
func (c *merchantNameCache) lookup(ctx context.Context, merchantID uuid.UUID) (string, bool, error) {
	if cached, ok := c.names[merchantID]; ok {
		if cached == nil {
			return "", false, nil
		}

		return *cached, true, nil
	}

	merchant, err := c.repo.FindByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			c.names[merchantID] = nil

			return "", false, nil
		}

		return "", false, errors.Wrap(err, "failed to resolve merchant name")
	}

	c.names[merchantID] = &merchant.Name

	return merchant.Name, true, nil
}
