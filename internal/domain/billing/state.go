// Package billing provides pure business logic for the invoice lifecycle.
// It has no persistence or transport dependencies and is tested in
// isolation; the usecase layer wires its decisions to the invoice store and
// the notification dispatcher.
package billing

import (
	"time"

	"rxsupply/internal/domain/entity"
)

// transitions is the invoice status transition table. A missing
// (status, action) entry means the action leaves the status unchanged.
// Remind and cancel appear nowhere: they are side-effect-only actions.
var transitions = map[entity.InvoiceStatus]map[entity.InvoiceAction]entity.InvoiceStatus{
	entity.InvoiceStatusDraft: {
		entity.InvoiceActionSend: entity.InvoiceStatusNeedsPaymentLink,
	},
	entity.InvoiceStatusNeedsPaymentLink: {
		entity.InvoiceActionSend: entity.InvoiceStatusPaymentLinkSent,
	},
	entity.InvoiceStatusPaymentLinkSent: {
		entity.InvoiceActionMarkPaid:    entity.InvoiceStatusPaid,
		entity.InvoiceActionMarkOverdue: entity.InvoiceStatusOverdue,
	},
	entity.InvoiceStatusPending: {
		entity.InvoiceActionMarkPaid:    entity.InvoiceStatusPaid,
		entity.InvoiceActionMarkOverdue: entity.InvoiceStatusOverdue,
	},
	entity.InvoiceStatusOverdue: {
		entity.InvoiceActionMarkPaid: entity.InvoiceStatusPaid,
	},
}

// NextStatus computes the status an action moves an invoice to. The second
// return value reports whether the status actually changes. Unknown
// (status, action) pairs are status-preserving no-ops; this permissive
// behavior is the established contract of the admin UI, so stricter
// rejection is deliberately not applied here.
func NextStatus(current entity.InvoiceStatus, action entity.InvoiceAction) (entity.InvoiceStatus, bool) {
	if actions, ok := transitions[current]; ok {
		if next, ok := actions[action]; ok {
			return next, next != current
		}
	}

	return current, false
}

// IsTerminal reports whether a status has no outgoing transitions.
func IsTerminal(status entity.InvoiceStatus) bool {
	return status == entity.InvoiceStatusPaid || status == entity.InvoiceStatusCancelled
}

// DefaultReminderGrace is how long past the due date an invoice must be
// before a payment reminder is offered to the operator.
const DefaultReminderGrace = 7 * 24 * time.Hour

// reminderStatuses are the statuses in which a payment nudge makes sense.
var reminderStatuses = map[entity.InvoiceStatus]struct{}{
	entity.InvoiceStatusPending:         {},
	entity.InvoiceStatusPaymentLinkSent: {},
	entity.InvoiceStatusOverdue:         {},
}

// ReminderEligible reports whether the "send reminder" affordance should be
// shown for the invoice at the given instant. It is a derived predicate and
// has no side effects.
func ReminderEligible(inv *entity.Invoice, now time.Time, grace time.Duration) bool {
	if inv == nil {
		return false
	}

	if _, ok := reminderStatuses[inv.Status]; !ok {
		return false
	}

	return now.Sub(inv.DueDate) >= grace
}
