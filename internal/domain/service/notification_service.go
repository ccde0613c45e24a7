// Package service defines interfaces for external collaborators the domain
// depends on but does not implement.
package service

import (
	"context"
)

// InvoiceNotification is one human-readable notice about an invoice action,
// published for the transactional mailer to deliver. Delivery guarantees
// (retry, bounce handling) belong to the mailer, not to this service.
type InvoiceNotification struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing.
	InvoiceID     string `json:"invoice_id"`
	InvoiceNumber string `json:"invoice_number"`
	Action        string `json:"action"`
	Recipient     string `json:"recipient,omitempty"` // Customer email; empty for operator-only notices.
	Subject       string `json:"subject"`
	Body          string `json:"body"`
}

// NotificationDispatcher defines the interface for handing invoice
// notifications to the delivery pipeline.
type NotificationDispatcher interface {
	// DispatchInvoiceNotification publishes one notification for async delivery.
	DispatchInvoiceNotification(ctx context.Context, notification *InvoiceNotification) error

	// Close releases any resources held by the dispatcher.
	Close() error
}
