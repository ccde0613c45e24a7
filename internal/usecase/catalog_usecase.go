// Package usecase defines the application-level interfaces consumed by the
// delivery layer.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"rxsupply/internal/domain/entity"
)

// PricedVariant is a size variant annotated with the price resolved for the
// viewing customer group.
type PricedVariant struct {
	entity.ProductSizeVariant
	Pricing entity.ResolvedPrice `json:"pricing"`
}

// CatalogProduct is a product with its variants priced for one viewer.
type CatalogProduct struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Variants    []PricedVariant `json:"variants"`
}

// CatalogUsecase defines catalog reads with group pricing applied.
type CatalogUsecase interface {
	// GetCatalog retrieves all active products with each variant priced for
	// the given customer group. A zero groupID prices everything at base.
	GetCatalog(ctx context.Context, groupID uuid.UUID) ([]*CatalogProduct, error)

	// GetVariantPrice resolves the price of a single variant for a group.
	GetVariantPrice(ctx context.Context, variantID, groupID uuid.UUID) (*entity.ResolvedPrice, error)
}
