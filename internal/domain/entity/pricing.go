package entity

import (
	"time"

	"github.com/google/uuid"
)

// RuleStatus is the lifecycle state of a group pricing rule.
type RuleStatus string

// Rule statuses. Only active rules participate in price resolution.
const (
	RuleStatusActive   RuleStatus = "active"
	RuleStatusInactive RuleStatus = "inactive"
)

// GroupPricingRule maps a set of customer groups to override prices for a
// set of product size variants. Rules are administered out of band and are
// read-only to price resolution.
type GroupPricingRule struct {
	ID               uuid.UUID            `json:"id"`                // The Global Unique Identifier (GUID) for the rule.
	Name             string               `json:"name"`              // Administrative label for the rule.
	Status           RuleStatus           `json:"status"`            // Only "active" rules apply.
	GroupIDs         []uuid.UUID          `json:"group_ids"`         // Customer groups the rule covers.
	ProductOverrides map[uuid.UUID]string `json:"product_overrides"` // Variant ID -> override unit price as a decimal string.
	CreatedAt        time.Time            `json:"created_at"`        // Timestamp of when the rule was created.
	UpdatedAt        time.Time            `json:"updated_at"`        // Timestamp of the last modification; used as the overlap tie-break.
}

// IsActive reports whether the rule participates in price resolution.
func (r *GroupPricingRule) IsActive() bool {
	return r.Status == RuleStatusActive
}

// CoversGroup reports whether the rule's group set contains groupID.
func (r *GroupPricingRule) CoversGroup(groupID uuid.UUID) bool {
	for _, id := range r.GroupIDs {
		if id == groupID {
			return true
		}
	}

	return false
}

// ResolvedPrice is the price a specific viewer sees for a specific variant.
// OriginalPrice is zero when no discount applied, so the display layer can
// distinguish "discounted from X" from a plain list price.
type ResolvedPrice struct {
	EffectivePrice float64 `json:"effective_price"` // The unit price to charge/display.
	OriginalPrice  float64 `json:"original_price"`  // The struck-through base price, or 0 when not discounted.
}

// Discounted reports whether an override lowered (or changed) the base price.
func (p ResolvedPrice) Discounted() bool {
	return p.OriginalPrice != 0
}
