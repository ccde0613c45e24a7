package entity

import (
	"math"
	"time"

	"github.com/google/uuid"

	"rxsupply/internal/errors"
)

// InvoiceStatus is the lifecycle stage of a billing document. Transitions
// between statuses are governed by the billing package's transition table.
type InvoiceStatus string

// Invoice lifecycle statuses. Paid and cancelled are terminal.
const (
	InvoiceStatusDraft            InvoiceStatus = "draft"
	InvoiceStatusNeedsPaymentLink InvoiceStatus = "needs_payment_link"
	InvoiceStatusPaymentLinkSent  InvoiceStatus = "payment_link_sent"
	InvoiceStatusPending          InvoiceStatus = "pending"
	InvoiceStatusPaid             InvoiceStatus = "paid"
	InvoiceStatusOverdue          InvoiceStatus = "overdue"
	InvoiceStatusCancelled        InvoiceStatus = "cancelled"
)

// InvoiceAction is an operator-initiated action on an invoice.
type InvoiceAction string

// Invoice actions. Remind and cancel never change status; they only emit
// notifications.
const (
	InvoiceActionSend        InvoiceAction = "send"
	InvoiceActionMarkPaid    InvoiceAction = "mark_paid"
	InvoiceActionMarkOverdue InvoiceAction = "mark_overdue"
	InvoiceActionCancel      InvoiceAction = "cancel"
	InvoiceActionRemind      InvoiceAction = "remind"
)

// PaymentMethod is how an invoice is expected to be settled. Empty when the
// customer has not chosen one yet.
type PaymentMethod string

// Supported payment methods.
const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodACH          PaymentMethod = "ach"
	PaymentMethodManual       PaymentMethod = "manual"
)

// CustomerInfo is a point-in-time snapshot of the billed customer, not a
// live reference to a customer profile.
type CustomerInfo struct {
	Name  string `json:"name"`  // Customer display name at invoicing time.
	Email string `json:"email"` // Notification recipient address.
	Phone string `json:"phone"` // Contact phone, informational only.
}

// InvoiceItem is one billed line on an invoice.
type InvoiceItem struct {
	Description string  `json:"description"` // Human-readable line description.
	Quantity    float64 `json:"quantity"`    // Billed quantity, > 0.
	Rate        float64 `json:"rate"`        // Unit rate, >= 0.
	Amount      float64 `json:"amount"`      // Line total; must equal Quantity * Rate.
}

// Invoice is a billing document tied to one order and one customer profile.
// It is never hard-deleted; cancellation is a status, not a deletion.
type Invoice struct {
	ID             uuid.UUID     `json:"id"`               // The Global Unique Identifier (GUID) for the invoice.
	InvoiceNumber  string        `json:"invoice_number"`   // Unique human-readable number.
	OrderID        uuid.UUID     `json:"order_id"`         // Weak back reference to the originating order.
	CustomerID     uuid.UUID     `json:"customer_id"`      // Weak back reference to the customer profile.
	Status         InvoiceStatus `json:"status"`           // Current lifecycle status.
	Amount         float64       `json:"amount"`           // Net amount before tax.
	TaxAmount      float64       `json:"tax_amount"`       // Tax portion.
	TotalAmount    float64       `json:"total_amount"`     // Must equal Amount + TaxAmount.
	DueDate        time.Time     `json:"due_date"`         // Payment due date; feeds reminder eligibility.
	PaymentMethod  PaymentMethod `json:"payment_method"`   // Empty until the customer picks one.
	PaymentLinkURL string        `json:"payment_link_url"` // Gateway payment link, set when the link is issued.
	CustomerInfo   CustomerInfo  `json:"customer_info"`    // Snapshot of the billed customer.
	Items          []InvoiceItem `json:"items"`            // Ordered billed lines.
	CreatedAt      time.Time     `json:"created_at"`       // Timestamp of when the invoice was created.
	UpdatedAt      time.Time     `json:"updated_at"`       // Timestamp of the last modification.
}

// Invoice validation errors.
var (
	ErrInvoiceTotalMismatch = errors.New("invoice total does not equal amount plus tax")
	ErrInvoiceItemInvalid   = errors.New("invoice item has invalid quantity, rate or amount")
)

// amountEpsilon absorbs float rounding when checking monetary identities.
const amountEpsilon = 0.005

// Validate checks the invoice's arithmetic invariants: the total must equal
// amount + tax, and every line's amount must equal quantity * rate with a
// positive quantity and non-negative rate.
func (inv *Invoice) Validate() error {
	if math.Abs(inv.TotalAmount-(inv.Amount+inv.TaxAmount)) > amountEpsilon {
		return ErrInvoiceTotalMismatch
	}

	for _, item := range inv.Items {
		if item.Quantity <= 0 || item.Rate < 0 {
			return ErrInvoiceItemInvalid
		}
		if math.Abs(item.Amount-item.Quantity*item.Rate) > amountEpsilon {
			return ErrInvoiceItemInvalid
		}
	}

	return nil
}
