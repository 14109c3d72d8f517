package usecases

import (
	"context"

	"github.com/google/uuid"
	"makershop.backend/internal/domain/entities"
	"makershop.backend/internal/domain/repositories"
	"makershop.backend/pkg/utils"
)

// AdminStats is the marketplace-wide overview for the admin dashboard
type AdminStats struct {
	TotalUsers  int64 `json:"totalUsers"`
	TotalShops  int64 `json:"totalShops"`
	PublicShops int64 `json:"publicShops"`
}

// AdminUsecase handles admin-only marketplace views
type AdminUsecase struct {
	userRepo repositories.UserRepository
	shopRepo repositories.ShopRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(userRepo repositories.UserRepository, shopRepo repositories.ShopRepository) *AdminUsecase {
	return &AdminUsecase{userRepo: userRepo, shopRepo: shopRepo}
}

// ListShops lists shops in the marketplace, paginated
func (u *AdminUsecase) ListShops(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Shop, utils.PaginationMeta, error) {
	shops, err := u.shopRepo.List(ctx)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	page := paginateSlice(shops, pagination)
	return page, utils.CalculateMeta(int64(len(shops)), pagination.Page, pagination.Limit), nil
}

// ListUsers lists registered users, paginated
func (u *AdminUsecase) ListUsers(ctx context.Context, pagination utils.PaginationParams) ([]*entities.User, utils.PaginationMeta, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	page := paginateSlice(users, pagination)
	return page, utils.CalculateMeta(int64(len(users)), pagination.Page, pagination.Limit), nil
}

func paginateSlice[T any](items []T, pagination utils.PaginationParams) []T {
	start := pagination.CalculateOffset()
	if start > len(items) {
		start = len(items)
	}
	end := start + pagination.Limit
	if pagination.Limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// GetStats returns marketplace totals
func (u *AdminUsecase) GetStats(ctx context.Context) (*AdminStats, error) {
	users, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	shops, err := u.shopRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	all, err := u.shopRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var public int64
	for _, s := range all {
		if s.IsPublic {
			public++
		}
	}

	return &AdminStats{TotalUsers: users, TotalShops: shops, PublicShops: public}, nil
}

// SetShopVisibility force-toggles a shop's public flag and drops its
// cached page
func (u *AdminUsecase) SetShopVisibility(ctx context.Context, shopID uuid.UUID, isPublic bool) error {
	shop, err := u.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return err
	}

	if err := u.shopRepo.SetVisibility(ctx, shopID, isPublic); err != nil {
		return err
	}

	InvalidatePageCache(ctx, shop.Slug)
	return nil
}
