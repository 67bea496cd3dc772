// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tally/internal/delivery/http/middleware"
	"tally/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MerchantHandler *handler.MerchantHandler
	ReceiptHandler  *handler.ReceiptHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	merchantHandler *handler.MerchantHandler
	receiptHandler  *handler.ReceiptHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		merchantHandler: params.MerchantHandler,
		receiptHandler:  params.ReceiptHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything else requires a resolved user identity.
	api := e.Group("")
	api.Use(r.authMiddleware.Authenticate)
	{
		api.GET("/merchants", r.merchantHandler.ListMerchants)
		api.POST("/merchants", r.merchantHandler.CreateMerchant)
		api.GET("/merchants/search", r.merchantHandler.SearchMerchants)

		api.GET("/receipts", r.receiptHandler.ListReceipts)
		api.POST("/receipts", r.receiptHandler.CreateReceipt)
		api.GET("/receipts/search", r.receiptHandler.SearchReceipts)
		api.POST("/receipts/upload-url", r.receiptHandler.GenerateUploadURL)
	}
}
