package billing

import (
	"fmt"

	"rxsupply/internal/domain/entity"
)

// ActionMessage is the human-readable notification emitted after an invoice
// action. Recipient is empty for operator-only notices.
type ActionMessage struct {
	Recipient string // Customer email for customer-facing actions, empty otherwise.
	Subject   string
	Body      string
}

// ComposeActionMessage builds the notification for an action on an invoice.
// Send and remind address the customer and reference their email; the
// bookkeeping actions reference the invoice number only.
func ComposeActionMessage(inv *entity.Invoice, action entity.InvoiceAction) ActionMessage {
	number := inv.InvoiceNumber
	email := inv.CustomerInfo.Email
	name := inv.CustomerInfo.Name

	switch action {
	case entity.InvoiceActionSend:
		return ActionMessage{
			Recipient: email,
			Subject:   fmt.Sprintf("Invoice %s from your pharmacy supplier", number),
			Body:      fmt.Sprintf("Invoice %s has been sent to %s (%s).", number, name, email),
		}
	case entity.InvoiceActionRemind:
		return ActionMessage{
			Recipient: email,
			Subject:   fmt.Sprintf("Payment reminder for invoice %s", number),
			Body:      fmt.Sprintf("A payment reminder for invoice %s was sent to %s (%s).", number, name, email),
		}
	case entity.InvoiceActionMarkPaid:
		return ActionMessage{
			Subject: fmt.Sprintf("Invoice %s marked as paid", number),
			Body:    fmt.Sprintf("Invoice %s has been marked as paid.", number),
		}
	case entity.InvoiceActionMarkOverdue:
		return ActionMessage{
			Subject: fmt.Sprintf("Invoice %s marked as overdue", number),
			Body:    fmt.Sprintf("Invoice %s has been marked as overdue.", number),
		}
	case entity.InvoiceActionCancel:
		return ActionMessage{
			Subject: fmt.Sprintf("Invoice %s cancelled", number),
			Body:    fmt.Sprintf("Invoice %s has been cancelled.", number),
		}
	default:
		return ActionMessage{
			Subject: fmt.Sprintf("Invoice %s updated", number),
			Body:    fmt.Sprintf("Action %q was applied to invoice %s.", action, number),
		}
	}
}
