package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"makershop.backend/internal/domain/entities"
	domainerrors "makershop.backend/internal/domain/errors"
	"makershop.backend/internal/domain/repositories"
	"makershop.backend/pkg/logger"
	"makershop.backend/pkg/redis"
)

// StorefrontUsecase composes the public storefront page
type StorefrontUsecase struct {
	shopRepo     repositories.ShopRepository
	tokenRepo    repositories.DesignTokenRepository
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	hoursRepo    repositories.ShopHoursRepository
	cacheTTL     time.Duration
}

// NewStorefrontUsecase creates a new storefront usecase
func NewStorefrontUsecase(
	shopRepo repositories.ShopRepository,
	tokenRepo repositories.DesignTokenRepository,
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	hoursRepo repositories.ShopHoursRepository,
	cacheTTL time.Duration,
) *StorefrontUsecase {
	return &StorefrontUsecase{
		shopRepo:     shopRepo,
		tokenRepo:    tokenRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		hoursRepo:    hoursRepo,
		cacheTTL:     cacheTTL,
	}
}

// GetPublicPage returns the composed page for a public shop by slug.
// Pages are cached briefly in redis; the save pipeline invalidates the
// slug's entry on every write.
func (u *StorefrontUsecase) GetPublicPage(ctx context.Context, slug string) (*entities.StorefrontPage, error) {
	if redis.GetClient() != nil {
		var cached entities.StorefrontPage
		if err := redis.GetJSON(ctx, storefrontCacheKey(slug), &cached); err == nil {
			return &cached, nil
		}
	}

	shop, err := u.shopRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !shop.IsPublic {
		return nil, domainerrors.ErrShopNotPublic
	}

	page, err := u.composeFor(ctx, shop)
	if err != nil {
		return nil, err
	}

	if redis.GetClient() != nil {
		if err := redis.SetJSON(ctx, storefrontCacheKey(slug), page, u.cacheTTL); err != nil {
			logger.Warn(ctx, "failed to cache storefront page", zap.String("slug", slug), zap.Error(err))
		}
	}

	return page, nil
}

// GetPreviewPage returns the composed page for the owner's shop without
// the public gate or the cache. Same composition path as the public
// page, so preview and live output cannot drift.
func (u *StorefrontUsecase) GetPreviewPage(ctx context.Context, ownerID, shopID uuid.UUID) (*entities.StorefrontPage, error) {
	shop, err := u.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop.CreatedBy != ownerID {
		return nil, domainerrors.ErrForbidden
	}
	return u.composeFor(ctx, shop)
}

func (u *StorefrontUsecase) composeFor(ctx context.Context, shop *entities.Shop) (*entities.StorefrontPage, error) {
	tokensRow, err := u.tokenRepo.GetActiveByShop(ctx, shop.ID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		tokensRow = nil
	}

	theme := ResolveTheme(shop, tokensRow)

	var sections []entities.Section
	if tokensRow != nil {
		sections = tokensRow.Tokens.Sections
	}

	rctx := RenderContext{Shop: shop}
	if rctx.Products, err = u.productRepo.ListByShop(ctx, shop.ID); err != nil {
		return nil, err
	}
	if rctx.Categories, err = u.categoryRepo.ListByShop(ctx, shop.ID); err != nil {
		return nil, err
	}
	if rctx.Hours, err = u.hoursRepo.ListByShop(ctx, shop.ID); err != nil {
		return nil, err
	}

	return &entities.StorefrontPage{
		Shop:     shop.Summary(),
		Theme:    theme,
		App:      ResolveAppTokens(shop, tokensRow),
		Sections: ComposePage(sections, theme, rctx),
	}, nil
}

// InvalidatePageCache drops the cached page for a slug
func InvalidatePageCache(ctx context.Context, slug string) {
	if redis.GetClient() == nil {
		return
	}
	if err := redis.Del(ctx, storefrontCacheKey(slug)); err != nil {
		logger.Warn(ctx, "failed to invalidate storefront cache", zap.String("slug", slug), zap.Error(err))
	}
}
