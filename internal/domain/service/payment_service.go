package service

import (
	"context"
	"time"

	"rxsupply/internal/domain/entity"
)

// PaymentLink is a hosted checkout URL issued by the payment gateway for a
// single invoice.
type PaymentLink struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PaymentLinkService defines the interface to the payment gateway. The
// gateway's wire protocol is opaque to the domain; only this call shape is
// contracted.
type PaymentLinkService interface {
	// CreatePaymentLink requests a hosted payment link for the invoice's
	// total amount.
	CreatePaymentLink(ctx context.Context, inv *entity.Invoice) (*PaymentLink, error)
}
