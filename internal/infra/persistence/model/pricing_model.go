package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GroupPricingRuleModel is the GORM-specific struct for the
// 'group_pricing_rules' table. Group membership and per-variant overrides
// are stored as JSONB, matching the shape the pricing admin writes.
type GroupPricingRuleModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string         `gorm:"not null"`
	Status           string         `gorm:"not null;default:'active';index"`
	GroupIDs         datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	ProductOverrides datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (GroupPricingRuleModel) TableName() string {
	return "group_pricing_rules"
}
