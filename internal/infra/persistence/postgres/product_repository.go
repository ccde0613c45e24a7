package postgres

import (
	"context"

	"rxsupply/internal/domain/entity"
	"rxsupply/internal/domain/repository"
	"rxsupply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// ListActiveProducts retrieves all active products with their size variants.
func (repo *productRepository) ListActiveProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_key ASC")
		}).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindProductByID retrieves one product with its size variants.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_key ASC")
		}).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindVariantByID retrieves a single size variant.
func (repo *productRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductSizeVariant, error) {
	var variantM model.ProductSizeVariantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant by ID")
	}

	return toVariantDomain(&variantM), nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	variants := make([]entity.ProductSizeVariant, 0, len(data.Variants))
	for i := range data.Variants {
		variants = append(variants, *toVariantDomain(&data.Variants[i]))
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		IsActive:    data.IsActive,
		Variants:    variants,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toVariantDomain converts a GORM ProductSizeVariantModel to a domain ProductSizeVariant entity.
func toVariantDomain(data *model.ProductSizeVariantModel) *entity.ProductSizeVariant {
	if data == nil {
		return nil
	}

	return &entity.ProductSizeVariant{
		ID:        data.ID,
		ProductID: data.ProductID,
		BasePrice: data.BasePrice,
		SizeValue: data.SizeValue,
		SizeUnit:  data.SizeUnit,
		SortKey:   data.SortKey,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
