package repository

import (
	"context"

	"github.com/google/uuid"

	"rxsupply/internal/domain/entity"
	"rxsupply/internal/errors"
)

// Domain-specific errors for invoice persistence.
var (
	// ErrInvoiceNotFound is returned when an invoice is not found.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrInvoiceStatusConflict is returned when a conditional status update
	// finds the invoice in a different status than the caller observed.
	ErrInvoiceStatusConflict = errors.New("invoice status changed concurrently")
)

// InvoiceFilter narrows invoice listings.
type InvoiceFilter struct {
	// Status limits results to one lifecycle status when non-nil.
	Status *entity.InvoiceStatus
}

// InvoiceRepository defines the interface for invoice database operations.
// Invoices are created by order conversion elsewhere; this service reads
// them and advances their status.
type InvoiceRepository interface {
	// FindInvoiceByID retrieves an invoice by its unique ID.
	FindInvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)

	// FindInvoiceByNumber retrieves an invoice by its human-readable number.
	FindInvoiceByNumber(ctx context.Context, number string) (*entity.Invoice, error)

	// ListInvoices retrieves invoices matching the filter, newest first.
	ListInvoices(ctx context.Context, filter InvoiceFilter) ([]*entity.Invoice, error)

	// UpdateStatusIfCurrent atomically moves the invoice from expected to
	// next status. It returns ErrInvoiceStatusConflict when the stored
	// status no longer equals expected, so lost updates are detected
	// instead of overwritten.
	UpdateStatusIfCurrent(ctx context.Context, id uuid.UUID, expected, next entity.InvoiceStatus) error

	// UpdatePaymentLink records the gateway payment link issued for the
	// invoice.
	UpdatePaymentLink(ctx context.Context, id uuid.UUID, url string) error
}
