package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Shop struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Slug        string    `gorm:"type:varchar(80);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(120);not null"`
	Tagline     *string   `gorm:"type:varchar(255)"`
	Description *string   `gorm:"type:text"`

	PrimaryColor    *string `gorm:"type:varchar(20)"`
	SecondaryColor  *string `gorm:"type:varchar(20)"`
	AccentColor     *string `gorm:"type:varchar(20)"`
	BackgroundColor *string `gorm:"type:varchar(20)"`
	TextColor       *string `gorm:"type:varchar(20)"`
	HeadingColor    *string `gorm:"type:varchar(20)"`
	HeadingFont     *string `gorm:"type:varchar(80)"`
	BodyFont        *string `gorm:"type:varchar(80)"`

	NavBackgroundColor *string  `gorm:"type:varchar(20)"`
	NavTextColor       *string  `gorm:"type:varchar(20)"`
	HeroStyle          *string  `gorm:"type:varchar(40)"`
	HeroHeight         *string  `gorm:"type:varchar(20)"`
	HeroMediaURL       *string  `gorm:"type:text"`
	BackgroundPattern  *string  `gorm:"type:varchar(60)"`
	BackgroundGradient *string  `gorm:"type:text"`
	BackgroundImageURL *string  `gorm:"type:text"`
	BackgroundOpacity  *float64 `gorm:"type:decimal(4,3)"`

	AppBackgroundPattern  *string  `gorm:"type:varchar(60)"`
	AppBackgroundGradient *string  `gorm:"type:text"`
	AppBackgroundImageURL *string  `gorm:"type:text"`
	AppBackgroundOpacity  *float64 `gorm:"type:decimal(4,3)"`

	IsPublic        bool `gorm:"not null;default:false"`
	AcceptingOrders bool `gorm:"not null;default:true"`

	City               *string `gorm:"type:varchar(120)"`
	Region             *string `gorm:"type:varchar(120)"`
	PickupInstructions *string `gorm:"type:text"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
