package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Product is one item for sale in a shop. Owned by the product CRUD
// endpoints; the storefront renderer treats products as read-only input.
type Product struct {
	ID          uuid.UUID   `json:"id"`
	ShopID      uuid.UUID   `json:"shopId"`
	CategoryID  null.String `json:"categoryId,omitempty"`
	Name        string      `json:"name"`
	Description null.String `json:"description,omitempty"`
	PriceCents  int64       `json:"priceCents"`
	ImageURL    null.String `json:"imageUrl,omitempty"`
	IsFeatured  bool        `json:"isFeatured"`
	IsAvailable bool        `json:"isAvailable"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	DeletedAt   null.Time   `json:"-"`
}

// Category groups products within one shop
type Category struct {
	ID        uuid.UUID `json:"id"`
	ShopID    uuid.UUID `json:"shopId"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt null.Time `json:"-"`
}

// ProductInput represents input for creating or updating a product
type ProductInput struct {
	CategoryID  string `json:"categoryId,omitempty"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"priceCents" binding:"min=0"`
	ImageURL    string `json:"imageUrl,omitempty"`
	IsFeatured  bool   `json:"isFeatured"`
	IsAvailable bool   `json:"isAvailable"`
}

// CategoryInput represents input for creating or updating a category
type CategoryInput struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Position int    `json:"position"`
}
