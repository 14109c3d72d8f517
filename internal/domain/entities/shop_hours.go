package entities

import (
	"time"

	"github.com/google/uuid"
)

// ShopHours is one weekday's opening window for a shop
type ShopHours struct {
	ID        uuid.UUID `json:"id"`
	ShopID    uuid.UUID `json:"shopId"`
	DayOfWeek int       `json:"dayOfWeek"` // 0 = Sunday
	OpensAt   string    `json:"opensAt"`   // "08:00"
	ClosesAt  string    `json:"closesAt"`  // "17:30"
	IsClosed  bool      `json:"isClosed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShopHoursInput represents one weekday entry in a bulk hours update
type ShopHoursInput struct {
	DayOfWeek int    `json:"dayOfWeek" binding:"min=0,max=6"`
	OpensAt   string `json:"opensAt,omitempty"`
	ClosesAt  string `json:"closesAt,omitempty"`
	IsClosed  bool   `json:"isClosed"`
}
