// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"rxsupply/internal/domain/entity"
	domainerrors "rxsupply/internal/domain/errors"
	"rxsupply/internal/domain/pricing"
	"rxsupply/internal/domain/repository"
	"rxsupply/internal/usecase"
)

type catalogService struct {
	productRepo repository.ProductRepository
	pricingRepo repository.PricingRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	PricingRepo repository.PricingRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		pricingRepo: params.PricingRepo,
	}
}

// GetCatalog retrieves all active products priced for the given customer group
func (s *catalogService) GetCatalog(ctx context.Context, groupID uuid.UUID) ([]*usecase.CatalogProduct, error) {
	products, err := s.productRepo.ListActiveProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}

	rules, err := s.pricingRepo.ListRules(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pricing rules")
	}

	// One resolver per render; lookups are O(1) per variant.
	resolver := pricing.NewResolver(rules)

	catalog := make([]*usecase.CatalogProduct, 0, len(products))
	for _, product := range products {
		priced := &usecase.CatalogProduct{
			ID:          product.ID,
			Name:        product.Name,
			Description: product.Description,
			Category:    product.Category,
			Variants:    make([]usecase.PricedVariant, 0, len(product.Variants)),
		}

		variants := product.Variants
		sort.SliceStable(variants, func(i, j int) bool {
			return variants[i].SortKey < variants[j].SortKey
		})

		for _, variant := range variants {
			priced.Variants = append(priced.Variants, usecase.PricedVariant{
				ProductSizeVariant: variant,
				Pricing:            resolver.Resolve(&variant, groupID),
			})
		}

		catalog = append(catalog, priced)
	}

	return catalog, nil
}

// GetVariantPrice resolves the price of a single variant for a group
func (s *catalogService) GetVariantPrice(ctx context.Context, variantID, groupID uuid.UUID) (*entity.ResolvedPrice, error) {
	variant, err := s.productRepo.FindVariantByID(ctx, variantID)
	if err != nil {
		if errors.Is(err, repository.ErrVariantNotFound) {
			return nil, domainerrors.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant")
	}

	rules, err := s.pricingRepo.ListRules(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pricing rules")
	}

	resolved := pricing.ResolvePrice(variant, groupID, rules)

	return &resolved, nil
}
