package impl

import (
	"context"
	"testing"
	"time"

	"rxsupply/internal/domain/entity"
	domainerrors "rxsupply/internal/domain/errors"
	"rxsupply/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService(productRepo *mockProductRepository, pricingRepo *mockPricingRepository) *catalogService {
	return &catalogService{
		productRepo: productRepo,
		pricingRepo: pricingRepo,
	}
}

func TestCatalogService_GetCatalog_AppliesGroupPricing(t *testing.T) {
	productRepo := new(mockProductRepository)
	pricingRepo := new(mockPricingRepository)
	svc := newTestCatalogService(productRepo, pricingRepo)

	ctx := context.Background()
	groupID := uuid.New()

	discounted := entity.ProductSizeVariant{ID: uuid.New(), BasePrice: 24.99, SortKey: 2}
	plain := entity.ProductSizeVariant{ID: uuid.New(), BasePrice: 12.99, SortKey: 1}

	products := []*entity.Product{{
		ID:       uuid.New(),
		Name:     "Amber vials",
		Category: "packaging",
		IsActive: true,
		Variants: []entity.ProductSizeVariant{discounted, plain},
	}}

	rules := []*entity.GroupPricingRule{{
		ID:               uuid.New(),
		Status:           entity.RuleStatusActive,
		GroupIDs:         []uuid.UUID{groupID},
		ProductOverrides: map[uuid.UUID]string{discounted.ID: "19.99"},
		UpdatedAt:        time.Now(),
	}}

	productRepo.On("ListActiveProducts", ctx).Return(products, nil)
	pricingRepo.On("ListRules", ctx).Return(rules, nil)

	catalog, err := svc.GetCatalog(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	require.Len(t, catalog[0].Variants, 2)

	// Variants come back ordered by sort key.
	assert.Equal(t, plain.ID, catalog[0].Variants[0].ID)
	assert.Equal(t, 12.99, catalog[0].Variants[0].Pricing.EffectivePrice)
	assert.False(t, catalog[0].Variants[0].Pricing.Discounted())

	assert.Equal(t, discounted.ID, catalog[0].Variants[1].ID)
	assert.Equal(t, 19.99, catalog[0].Variants[1].Pricing.EffectivePrice)
	assert.Equal(t, 24.99, catalog[0].Variants[1].Pricing.OriginalPrice)
}

func TestCatalogService_GetCatalog_AnonymousViewerSeesBasePrices(t *testing.T) {
	productRepo := new(mockProductRepository)
	pricingRepo := new(mockPricingRepository)
	svc := newTestCatalogService(productRepo, pricingRepo)

	ctx := context.Background()
	variant := entity.ProductSizeVariant{ID: uuid.New(), BasePrice: 24.99}

	products := []*entity.Product{{
		ID:       uuid.New(),
		Name:     "Amber vials",
		Variants: []entity.ProductSizeVariant{variant},
	}}
	rules := []*entity.GroupPricingRule{{
		ID:               uuid.New(),
		Status:           entity.RuleStatusActive,
		GroupIDs:         []uuid.UUID{uuid.New()},
		ProductOverrides: map[uuid.UUID]string{variant.ID: "19.99"},
	}}

	productRepo.On("ListActiveProducts", ctx).Return(products, nil)
	pricingRepo.On("ListRules", ctx).Return(rules, nil)

	catalog, err := svc.GetCatalog(ctx, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, 24.99, catalog[0].Variants[0].Pricing.EffectivePrice)
	assert.False(t, catalog[0].Variants[0].Pricing.Discounted())
}

func TestCatalogService_GetVariantPrice(t *testing.T) {
	productRepo := new(mockProductRepository)
	pricingRepo := new(mockPricingRepository)
	svc := newTestCatalogService(productRepo, pricingRepo)

	ctx := context.Background()
	groupID := uuid.New()
	variant := &entity.ProductSizeVariant{ID: uuid.New(), BasePrice: 24.99}

	rules := []*entity.GroupPricingRule{{
		ID:               uuid.New(),
		Status:           entity.RuleStatusActive,
		GroupIDs:         []uuid.UUID{groupID},
		ProductOverrides: map[uuid.UUID]string{variant.ID: "19.99"},
		UpdatedAt:        time.Now(),
	}}

	productRepo.On("FindVariantByID", ctx, variant.ID).Return(variant, nil)
	pricingRepo.On("ListRules", ctx).Return(rules, nil)

	price, err := svc.GetVariantPrice(ctx, variant.ID, groupID)
	require.NoError(t, err)
	assert.Equal(t, 19.99, price.EffectivePrice)
	assert.Equal(t, 24.99, price.OriginalPrice)
}

func TestCatalogService_GetVariantPrice_NotFound(t *testing.T) {
	productRepo := new(mockProductRepository)
	pricingRepo := new(mockPricingRepository)
	svc := newTestCatalogService(productRepo, pricingRepo)

	ctx := context.Background()
	variantID := uuid.New()

	productRepo.On("FindVariantByID", ctx, variantID).Return(nil, repository.ErrVariantNotFound)

	_, err := svc.GetVariantPrice(ctx, variantID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrVariantNotFound)
}
