// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rxsupply/internal/delivery/http/router/handler"
	deliverymiddleware "rxsupply/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler      *handler.CatalogHandler
	InvoiceHandler      *handler.InvoiceHandler
	RequestIDMiddleware *deliverymiddleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler      *handler.CatalogHandler
	invoiceHandler      *handler.InvoiceHandler
	requestIDMiddleware *deliverymiddleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:      params.CatalogHandler,
		invoiceHandler:      params.InvoiceHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.Use(r.requestIDMiddleware.Process)

	// Catalog routes: product listing with group pricing applied
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("", r.catalogHandler.GetCatalog)
		catalogGroup.GET("/variants/:variantId/price", r.catalogHandler.GetVariantPrice)
	}

	// Invoice routes: back-office invoice reads and lifecycle actions
	invoiceGroup := e.Group("/invoices")
	{
		invoiceGroup.GET("", r.invoiceHandler.ListInvoices)
		invoiceGroup.GET("/:invoiceId", r.invoiceHandler.GetInvoice)
		invoiceGroup.POST("/:invoiceId/actions", r.invoiceHandler.ApplyInvoiceAction)
		invoiceGroup.GET("/:invoiceId/payment-qr", r.invoiceHandler.GetPaymentLinkQR)
	}
}
