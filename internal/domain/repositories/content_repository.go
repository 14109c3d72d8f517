package repositories

import (
	"context"

	"github.com/google/uuid"
	"makershop.backend/internal/domain/entities"
)

// ProductRepository defines product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entities.Category, error)
	Update(ctx context.Context, category *entities.Category) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// ShopHoursRepository defines opening hours operations. Hours are
// always written as a full weekly set.
type ShopHoursRepository interface {
	ReplaceForShop(ctx context.Context, shopID uuid.UUID, hours []*entities.ShopHours) error
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entities.ShopHours, error)
}
