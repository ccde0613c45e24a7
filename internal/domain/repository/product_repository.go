// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/google/uuid"

	"rxsupply/internal/domain/entity"
	"rxsupply/internal/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when a product size variant is not found.
	ErrVariantNotFound = errors.New("product size variant not found")
)

// ProductRepository defines the interface for catalog database operations.
// The catalog is read-only to this service; product administration happens
// out of band.
type ProductRepository interface {
	// ListActiveProducts retrieves all active products with their size
	// variants, variants ordered by sort key.
	ListActiveProducts(ctx context.Context) ([]*entity.Product, error)

	// FindProductByID retrieves one product with its size variants.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindVariantByID retrieves a single size variant.
	FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductSizeVariant, error)
}
