package models

import (
	"time"

	"github.com/google/uuid"
)

// ShopDesignTokens stores one token bundle per row. The partial unique
// index keeps "at most one active row per shop" true even under
// concurrent saves; the repositories maintain it transactionally.
type ShopDesignTokens struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ShopID    uuid.UUID `gorm:"type:uuid;not null;index:idx_tokens_shop_active,unique,where:is_active"`
	Tokens    string    `gorm:"type:jsonb;not null;default:'{}'"`
	IsActive  bool      `gorm:"not null;default:true;index:idx_tokens_shop_active,unique,where:is_active"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ShopDesignTokens) TableName() string {
	return "shop_design_tokens"
}
