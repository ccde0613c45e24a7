package usecase

import (
	"context"

	"github.com/google/uuid"

	"rxsupply/internal/domain/entity"
)

// InvoiceView is an invoice annotated with derived, non-persisted fields
// the admin UI needs.
type InvoiceView struct {
	*entity.Invoice
	ReminderEligible bool `json:"reminder_eligible"` // Whether the "send reminder" affordance applies now.
}

// BillingUsecase defines invoice reads and lifecycle actions.
type BillingUsecase interface {
	// GetInvoice retrieves one invoice with derived fields.
	GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceView, error)

	// ListInvoices retrieves invoices, optionally filtered by status.
	ListInvoices(ctx context.Context, status *entity.InvoiceStatus) ([]*InvoiceView, error)

	// ApplyInvoiceAction runs one operator action through the lifecycle
	// state machine: persist the status change (if any) with a conditional
	// update, then emit the notification. The returned invoice reflects the
	// persisted state.
	ApplyInvoiceAction(ctx context.Context, id uuid.UUID, action entity.InvoiceAction) (*InvoiceView, error)

	// PaymentLinkQR renders the invoice's payment link as a PNG QR code.
	PaymentLinkQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
