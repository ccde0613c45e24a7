package billing

import (
	"testing"

	"rxsupply/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestComposeActionMessage_CustomerFacingActionsCarryRecipient(t *testing.T) {
	inv := &entity.Invoice{
		InvoiceNumber: "INV-2026-0042",
		CustomerInfo: entity.CustomerInfo{
			Name:  "Lakeview Pharmacy",
			Email: "ap@lakeviewrx.com",
		},
	}

	for _, action := range []entity.InvoiceAction{entity.InvoiceActionSend, entity.InvoiceActionRemind} {
		msg := ComposeActionMessage(inv, action)
		assert.Equal(t, "ap@lakeviewrx.com", msg.Recipient)
		assert.Contains(t, msg.Subject, "INV-2026-0042")
		assert.Contains(t, msg.Body, "Lakeview Pharmacy")
	}
}

func TestComposeActionMessage_BookkeepingActionsAreOperatorOnly(t *testing.T) {
	inv := &entity.Invoice{
		InvoiceNumber: "INV-2026-0042",
		CustomerInfo: entity.CustomerInfo{
			Email: "ap@lakeviewrx.com",
		},
	}

	for _, action := range []entity.InvoiceAction{
		entity.InvoiceActionMarkPaid,
		entity.InvoiceActionMarkOverdue,
		entity.InvoiceActionCancel,
	} {
		msg := ComposeActionMessage(inv, action)
		assert.Empty(t, msg.Recipient, "%s should not address the customer", action)
		assert.Contains(t, msg.Subject, "INV-2026-0042")
	}
}
