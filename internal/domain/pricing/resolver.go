// Package pricing computes the effective catalog price for a
// (customer group, product size variant) pair from group pricing rules.
// It is pure: callers pass an already-fetched rule snapshot and the package
// never reads ambient state, so it is safe for any number of concurrent
// page renders.
package pricing

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"rxsupply/internal/domain/entity"
)

// groupVariantKey identifies one (customer group, size variant) pair.
type groupVariantKey struct {
	groupID   uuid.UUID
	variantID uuid.UUID
}

// override is a winning rule override for one group/variant pair.
type override struct {
	price     string
	updatedAt time.Time
	ruleID    uuid.UUID
}

// Resolver answers price lookups against a pre-indexed rule snapshot.
// Build one per catalog render with NewResolver; lookups are O(1) per
// variant instead of a scan over every rule.
type Resolver struct {
	overrides map[groupVariantKey]override
}

// NewResolver indexes the given rules by (group, variant). When several
// active rules cover the same pair, the most recently updated rule wins;
// equal timestamps fall back to the larger rule ID so resolution is
// deterministic regardless of input order.
func NewResolver(rules []*entity.GroupPricingRule) *Resolver {
	overrides := make(map[groupVariantKey]override)

	for _, rule := range rules {
		if rule == nil || !rule.IsActive() {
			continue
		}

		for _, groupID := range rule.GroupIDs {
			for variantID, price := range rule.ProductOverrides {
				key := groupVariantKey{groupID: groupID, variantID: variantID}
				candidate := override{price: price, updatedAt: rule.UpdatedAt, ruleID: rule.ID}

				current, exists := overrides[key]
				if !exists || candidate.beats(current) {
					overrides[key] = candidate
				}
			}
		}
	}

	return &Resolver{overrides: overrides}
}

// beats reports whether o should replace current as the winning override.
func (o override) beats(current override) bool {
	if !o.updatedAt.Equal(current.updatedAt) {
		return o.updatedAt.After(current.updatedAt)
	}

	return o.ruleID.String() > current.ruleID.String()
}

// Resolve computes the price the given group sees for the given variant.
// A zero groupID means an anonymous or non-grouped viewer, which can never
// match a rule. Malformed or non-finite override values degrade to the base
// price: this feeds a customer-facing display where a missing price is worse
// than the list-price fallback.
func (r *Resolver) Resolve(variant *entity.ProductSizeVariant, groupID uuid.UUID) entity.ResolvedPrice {
	base := entity.ResolvedPrice{EffectivePrice: variant.BasePrice}

	if groupID == uuid.Nil {
		return base
	}

	winner, ok := r.overrides[groupVariantKey{groupID: groupID, variantID: variant.ID}]
	if !ok {
		return base
	}

	price, err := strconv.ParseFloat(winner.price, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return base
	}

	if price == variant.BasePrice {
		// An override equal to the list price is not a discount.
		return base
	}

	return entity.ResolvedPrice{
		EffectivePrice: price,
		OriginalPrice:  variant.BasePrice,
	}
}

// ResolvePrice is the one-shot form of Resolve for callers that price a
// single variant. Catalog rendering should build a Resolver once instead.
func ResolvePrice(variant *entity.ProductSizeVariant, groupID uuid.UUID, rules []*entity.GroupPricingRule) entity.ResolvedPrice {
	return NewResolver(rules).Resolve(variant, groupID)
}
