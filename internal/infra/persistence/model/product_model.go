// Package model contains the GORM-specific structs mapping domain entities
// to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"not null"`
	Description string
	Category    string                    `gorm:"index"`
	IsActive    bool                      `gorm:"not null;default:true;index"`
	Variants    []ProductSizeVariantModel `gorm:"foreignKey:ProductID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductSizeVariantModel is the GORM-specific struct for the
// 'product_size_variants' table.
type ProductSizeVariantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	BasePrice float64   `gorm:"type:decimal(12,2);not null;default:0"`
	SizeValue string
	SizeUnit  string
	SortKey   int `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductSizeVariantModel) TableName() string {
	return "product_size_variants"
}
