// Package handler contains the HTTP handlers for the application.
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

// CreateMerchantRequest is the payload for registering a merchant name.
type CreateMerchantRequest struct {
	Name string `json:"name" validate:"required"`
}

// MerchantHandler holds dependencies for merchant-related handlers.
type MerchantHandler struct {
	uc     usecase.MerchantUsecase
	logger *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler, injected by Fx.
func NewMerchantHandler(uc usecase.MerchantUsecase, logger *slog.Logger) *MerchantHandler {
	return &MerchantHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListMerchants returns the caller's merchants in creation order.
func (h *MerchantHandler) ListMerchants(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	merchants, err := h.uc.List(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, merchants, "Merchants retrieved successfully")
}

// CreateMerchant registers a merchant name for the caller and returns its id.
// Submitting an existing name returns the existing id instead of a duplicate.
func (h *MerchantHandler) CreateMerchant(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input *CreateMerchantRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merchant input")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	merchantID, err := h.uc.Create(c.Request().Context(), ownerID, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": merchantID.String()}, "Merchant registered successfully")
}

// SearchMerchants returns the caller's merchants whose name contains the
// query as a case-insensitive substring. An empty query matches everything.
func (h *MerchantHandler) SearchMerchants(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	merchants, err := h.uc.Search(c.Request().Context(), ownerID, c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, merchants, "Merchants retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
