package repository

import (
	"context"

	"rxsupply/internal/domain/entity"
)

// PricingRepository defines the interface for group pricing rule reads.
// Rules are administered out of band; the resolver receives the full
// snapshot and applies the active-status filter itself.
type PricingRepository interface {
	// ListRules retrieves all group pricing rules for the tenant.
	ListRules(ctx context.Context) ([]*entity.GroupPricingRule, error)
}
