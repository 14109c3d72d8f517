package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"makershop.backend/internal/domain/entities"
)

// ShopRepository defines shop data operations
type ShopRepository interface {
	Create(ctx context.Context, shop *entities.Shop) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Shop, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Shop, error)
	// GetLatestByOwner returns the owner's most recently created shop.
	GetLatestByOwner(ctx context.Context, ownerID uuid.UUID) (*entities.Shop, error)
	Update(ctx context.Context, shop *entities.Shop) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	SetVisibility(ctx context.Context, id uuid.UUID, isPublic bool) error
	List(ctx context.Context) ([]*entities.Shop, error)
	Count(ctx context.Context) (int64, error)
}

// DesignTokenRepository defines design token row operations. The single
// active row per shop is maintained by these operations running inside
// a unit of work.
type DesignTokenRepository interface {
	Create(ctx context.Context, tokens *entities.ShopDesignTokens) error
	GetActiveByShop(ctx context.Context, shopID uuid.UUID) (*entities.ShopDesignTokens, error)
	UpdateTokens(ctx context.Context, id uuid.UUID, bundle entities.TokenBundle) error
	// DeactivateActive clears the active flag on the shop's current
	// active row, if any. Returns entities untouched when none exists.
	DeactivateActive(ctx context.Context, shopID uuid.UUID) error
	// PruneInactiveBefore deletes inactive history rows last updated
	// before the cutoff and reports how many were removed.
	PruneInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
