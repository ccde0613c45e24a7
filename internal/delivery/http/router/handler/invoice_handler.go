package handler

import (
	"log/slog"
	"net/http"

	"rxsupply/internal/delivery/http/response"
	"rxsupply/internal/domain/entity"
	"rxsupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InvoiceHandlerParams holds dependencies for InvoiceHandler, injected by Fx.
type InvoiceHandlerParams struct {
	fx.In

	BillingUC usecase.BillingUsecase
	Logger    *slog.Logger
}

// InvoiceHandler holds dependencies for invoice-related handlers
type InvoiceHandler struct {
	billingUC usecase.BillingUsecase
	logger    *slog.Logger
}

// NewInvoiceHandler is the constructor for InvoiceHandler
func NewInvoiceHandler(params InvoiceHandlerParams) *InvoiceHandler {
	return &InvoiceHandler{
		billingUC: params.BillingUC,
		logger:    params.Logger,
	}
}

// InvoiceActionRequest represents the request body for an invoice action
type InvoiceActionRequest struct {
	Action entity.InvoiceAction `json:"action" validate:"required,oneof=send mark_paid mark_overdue cancel remind"`
}

// ListInvoices handles retrieving invoices, optionally filtered by status
func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	var status *entity.InvoiceStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.InvoiceStatus(raw)
		switch s {
		case entity.InvoiceStatusDraft, entity.InvoiceStatusNeedsPaymentLink,
			entity.InvoiceStatusPaymentLinkSent, entity.InvoiceStatusPending,
			entity.InvoiceStatusPaid, entity.InvoiceStatusOverdue,
			entity.InvoiceStatusCancelled:
			status = &s
		default:
			return response.BadRequest(c, "INVALID_STATUS", "Unknown invoice status")
		}
	}

	invoices, err := h.billingUC.ListInvoices(c.Request().Context(), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoices, "Invoices retrieved successfully")
}

// GetInvoice handles retrieving a single invoice
func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("invoiceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invoice ID")
	}

	invoice, err := h.billingUC.GetInvoice(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoice, "Invoice retrieved successfully")
}

// ApplyInvoiceAction handles running one lifecycle action on an invoice
func (h *InvoiceHandler) ApplyInvoiceAction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("invoiceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invoice ID")
	}

	var req InvoiceActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invoice action input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	invoice, err := h.billingUC.ApplyInvoiceAction(c.Request().Context(), id, req.Action)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoice, "Invoice action applied successfully")
}

// GetPaymentLinkQR handles rendering the invoice's payment link as a QR code
func (h *InvoiceHandler) GetPaymentLinkQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("invoiceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invoice ID")
	}

	qrCode, err := h.billingUC.PaymentLinkQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Disposition", "inline; filename=payment-link-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}
