// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item offered to pharmacies. A product is never sold
// directly; purchasing always happens through one of its size variants.
type Product struct {
	ID          uuid.UUID            `json:"id"`          // The Global Unique Identifier (GUID) for the product.
	Name        string               `json:"name"`        // Display name shown in the catalog.
	Description string               `json:"description"` // Longer description for the product detail view.
	Category    string               `json:"category"`    // Catalog category slug used for filtering.
	IsActive    bool                 `json:"is_active"`   // Inactive products are hidden from the catalog.
	Variants    []ProductSizeVariant `json:"variants"`    // The purchasable size/packaging configurations.
	CreatedAt   time.Time            `json:"created_at"`  // Timestamp of when the product was created.
	UpdatedAt   time.Time            `json:"updated_at"`  // Timestamp of the last modification.
}

// ProductSizeVariant represents one purchasable unit configuration of a
// product (e.g. "100 tablets", "500 ml"). It carries the list base price;
// group-specific prices are resolved on top of it at display time.
type ProductSizeVariant struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the variant.
	ProductID uuid.UUID `json:"product_id"` // The product this variant belongs to.
	BasePrice float64   `json:"base_price"` // List unit price, >= 0.
	SizeValue string    `json:"size_value"` // Display-only size magnitude (e.g. "100").
	SizeUnit  string    `json:"size_unit"`  // Display-only size unit (e.g. "tablets").
	SortKey   int       `json:"sort_key"`   // Ordering of variants within a product.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the variant was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
