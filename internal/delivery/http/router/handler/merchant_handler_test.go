package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "tally/internal/delivery/context"
	"tally/internal/delivery/http/validator"
	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	mockRepo "tally/internal/mocks/repository"
	"tally/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestMerchantHandler_ListMerchants(t *testing.T) {
	mockMerchantRepo := mockRepo.NewMockMerchantRepository(t)
	handler := NewMerchantHandler(impl.NewMerchantService(mockMerchantRepo, newTestLogger()), newTestLogger())

	ownerID := uuid.New()
	merchants := []*entity.Merchant{
		{ID: uuid.New(), Name: "Acme Corp", OwnerUserID: ownerID},
	}

	mockMerchantRepo.EXPECT().
		FindByOwner(mock.Anything, ownerID).
		Return(merchants, nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/merchants", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetUserID(c, ownerID)

	require.NoError(t, handler.ListMerchants(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme Corp")
}

func TestMerchantHandler_ListMerchants_Unauthenticated(t *testing.T) {
	mockMerchantRepo := mockRepo.NewMockMerchantRepository(t)
	handler := NewMerchantHandler(impl.NewMerchantService(mockMerchantRepo, newTestLogger()), newTestLogger())

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/merchants", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListMerchants(c)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrUnauthenticated, err)
}

func TestMerchantHandler_CreateMerchant(t *testing.T) {
	mockMerchantRepo := mockRepo.NewMockMerchantRepository(t)
	handler := NewMerchantHandler(impl.NewMerchantService(mockMerchantRepo, newTestLogger()), newTestLogger())

	ownerID := uuid.New()

	mockMerchantRepo.EXPECT().
		FindByOwnerAndName(mock.Anything, ownerID, "Acme Corp").
		Return(nil, repository.ErrMerchantNotFound)
	mockMerchantRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Merchant")).
		Return(nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/merchants", strings.NewReader(`{"name":"Acme Corp"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetUserID(c, ownerID)

	require.NoError(t, handler.CreateMerchant(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "id")
}

func TestMerchantHandler_CreateMerchant_MissingName(t *testing.T) {
	mockMerchantRepo := mockRepo.NewMockMerchantRepository(t)
	handler := NewMerchantHandler(impl.NewMerchantService(mockMerchantRepo, newTestLogger()), newTestLogger())

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/merchants", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetUserID(c, uuid.New())

	err := handler.CreateMerchant(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestMerchantHandler_SearchMerchants(t *testing.T) {
	mockMerchantRepo := mockRepo.NewMockMerchantRepository(t)
	handler := NewMerchantHandler(impl.NewMerchantService(mockMerchantRepo, newTestLogger()), newTestLogger())

	ownerID := uuid.New()
	merchants := []*entity.Merchant{
		{ID: uuid.New(), Name: "Acme Corp", OwnerUserID: ownerID},
		{ID: uuid.New(), Name: "Corner Bodega", OwnerUserID: ownerID},
	}

	mockMerchantRepo.EXPECT().
		FindByOwner(mock.Anything, ownerID).
		Return(merchants, nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/merchants/search?q=bodega", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetUserID(c, ownerID)

	require.NoError(t, handler.SearchMerchants(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Corner Bodega")
	assert.NotContains(t, rec.Body.String(), "Acme Corp")
}

func TestHealthCheck(t *testing.T) {
	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
