package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InvoiceModel is the GORM-specific struct for the 'invoices' table.
// customer_info and items are JSONB snapshots; older writers double-encoded
// them, which the read path tolerates.
type InvoiceModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	InvoiceNumber  string    `gorm:"uniqueIndex;not null"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	CustomerID     uuid.UUID `gorm:"type:uuid;index"`
	Status         string    `gorm:"not null;default:'draft';index"`
	Amount         float64   `gorm:"type:decimal(12,2);not null;default:0"`
	TaxAmount      float64   `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount    float64   `gorm:"type:decimal(12,2);not null;default:0"`
	DueDate        time.Time
	PaymentMethod  string
	PaymentLinkURL string
	CustomerInfo   datatypes.JSON `gorm:"type:jsonb"`
	Items          datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}
