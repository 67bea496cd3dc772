package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "tally/internal/delivery/context"
	"tally/internal/delivery/http/response"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReceiptHandler holds dependencies for receipt-related handlers.
type ReceiptHandler struct {
	uc     usecase.ReceiptUsecase
	logger *slog.Logger
}

// NewReceiptHandler is the constructor for ReceiptHandler, injected by Fx.
func NewReceiptHandler(uc usecase.ReceiptUsecase, logger *slog.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListReceipts returns the caller's receipts, newest purchase date first.
func (h *ReceiptHandler) ListReceipts(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	receipts, err := h.uc.List(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receipts, "Receipts retrieved successfully")
}

// CreateReceipt records a purchase for the caller and returns its id.
// Date and total are stored exactly as submitted.
func (h *ReceiptHandler) CreateReceipt(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input *usecase.CreateReceiptInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid receipt input")
	}

	receiptID, err := h.uc.Create(c.Request().Context(), ownerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": receiptID.String()}, "Receipt recorded successfully")
}

// SearchReceipts filters the caller's receipts by an exact purchase date
// and/or a free-text query.
func (h *ReceiptHandler) SearchReceipts(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	receipts, err := h.uc.Search(c.Request().Context(), ownerID, c.QueryParam("q"), c.QueryParam("date"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receipts, "Receipts retrieved successfully")
}

// GenerateUploadURL mints a signed upload target for a receipt image. The
// client uploads the image with a PUT to the returned URL, then submits the
// blob id on receipt creation.
func (h *ReceiptHandler) GenerateUploadURL(c echo.Context) error {
	if _, ok := deliverycontext.GetUserID(c); !ok {
		return domainerrors.ErrUnauthenticated
	}

	target, err := h.uc.GenerateUploadURL(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, target, "Upload URL generated successfully")
}
