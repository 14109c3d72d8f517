package models

import (
	"time"

	"github.com/google/uuid"
)

type ShopHours struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ShopID    uuid.UUID `gorm:"type:uuid;not null;index:idx_hours_shop_day,unique"`
	DayOfWeek int       `gorm:"not null;index:idx_hours_shop_day,unique"`
	OpensAt   string    `gorm:"type:varchar(5)"`
	ClosesAt  string    `gorm:"type:varchar(5)"`
	IsClosed  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ShopHours) TableName() string {
	return "shop_hours"
}
