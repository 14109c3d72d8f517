package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ShopID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:varchar(200);not null"`
	Description *string    `gorm:"type:text"`
	PriceCents  int64      `gorm:"not null;default:0"`
	ImageURL    *string    `gorm:"type:text"`
	IsFeatured  bool       `gorm:"not null;default:false"`
	IsAvailable bool       `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
