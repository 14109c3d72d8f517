package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"makershop.backend/internal/domain/entities"
	domainerrors "makershop.backend/internal/domain/errors"
	"makershop.backend/internal/domain/repositories"
	"makershop.backend/pkg/utils"
)

// ContentUsecase handles owner-scoped product, category, and hours
// management. Every write invalidates the shop's cached storefront
// page, since all three feed the renderer.
type ContentUsecase struct {
	shopRepo     repositories.ShopRepository
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	hoursRepo    repositories.ShopHoursRepository
}

// NewContentUsecase creates a new content usecase
func NewContentUsecase(
	shopRepo repositories.ShopRepository,
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	hoursRepo repositories.ShopHoursRepository,
) *ContentUsecase {
	return &ContentUsecase{
		shopRepo:     shopRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		hoursRepo:    hoursRepo,
	}
}

// ownedShop loads the caller's shop and enforces ownership
func (u *ContentUsecase) ownedShop(ctx context.Context, ownerID uuid.UUID) (*entities.Shop, error) {
	shop, err := u.shopRepo.GetLatestByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return shop, nil
}

// CreateProduct adds a product to the owner's shop
func (u *ContentUsecase) CreateProduct(ctx context.Context, ownerID uuid.UUID, input *entities.ProductInput) (*entities.Product, error) {
	shop, err := u.ownedShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entities.Product{
		ID:          utils.GenerateUUIDv7(),
		ShopID:      shop.ID,
		CategoryID:  nullIfEmpty(input.CategoryID),
		Name:        input.Name,
		Description: nullIfEmpty(input.Description),
		PriceCents:  input.PriceCents,
		ImageURL:    nullIfEmpty(input.ImageURL),
		IsFeatured:  input.IsFeatured,
		IsAvailable: input.IsAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	InvalidatePageCache(ctx, shop.Slug)
	return product, nil
}

// ListProducts lists the owner's products
func (u *ContentUsecase) ListProducts(ctx context.Context, ownerID uuid.UUID) ([]*entities.Product, error) {
	shop, err := u.ownedShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return u.productRepo.ListByShop(ctx, shop.ID)
}

// UpdateProduct overwrites a product the caller owns
func (u *ContentUsecase) UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, input *entities.ProductInput) (*entities.Product, error) {
	shop, err := u.ownedShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.ShopID != shop.ID {
		return nil, domainerrors.ErrForbidden
	}

	product.CategoryID = nullIfEmpty(input.CategoryID)
	product.Name = input.Name
	product.Description = nullIfEmpty(input.Description)
	product.PriceCents = input.PriceCents
	product.ImageURL = nullIfEmpty(input.ImageURL)
	product.IsFeatured = input.IsFeatured
	product.IsAvailable = input.IsAvailable

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	InvalidatePageCache(ctx, shop.Slug)
	return product, nil
}

// DeleteProduct soft deletes a product the caller owns
func (u *ContentUsecase) DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error {
	shop, err := u.ownedShop(ctx, ownerID)
	if err != nil {
		return err
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.ShopID != shop.ID {
		return domainerrors.ErrForbidden
	}

	if err := u.productRepo.SoftDelete(ctx, productID); err != nil {
		return err
	}

	InvalidatePageCache(ctx, shop.Slug)
	return nil
}

// CreateCategory adds a category to the owner's shop
func (u *ContentUsecase) CreateCategory(ctx context.Context, ownerID uuid.UUID, input *entities.CategoryInput) (*entities.Category, error) {
	shop, err := u.ownedShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := &entities.Category{
		ID:        utils.GenerateUUIDv7(),
		ShopID:    shop.ID,
		Name:      input.Name,
		Position:  input.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	InvalidatePageCache(ctx, shop.Slug)
	return category, nil
}

// ListCategories lists the owner's categories
func (u *ContentUsecase) ListCategories(ctx context.Context, ownerID uuid.UUID) ([]*entities.Category, error) {
	shop, err := u.ownedShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return u.categoryRepo.ListByShop(ctx, shop.ID)
}

// UpdateCategory overwrites a category the caller owns
func (u *ContentUsecase) UpdateCategory(ctx context.Context, ownerID, categoryID uuid.UUID, input *entities.CategoryInput) (*entities.Category, error) {
	shop, err := u.ownedShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	category, err := u.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.ShopID != shop.ID {
		return nil, domainerrors.ErrForbidden
	}

	category.Name = input.Name
	category.Position = input.Position

	if err := u.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	InvalidatePageCache(ctx, shop.Slug)
	return category, nil
}

// DeleteCategory soft deletes a category the caller owns
func (u *ContentUsecase) DeleteCategory(ctx context.Context, ownerID, categoryID uuid.UUID) error {
	shop, err := u.ownedShop(ctx, ownerID)
	if err != nil {
		return err
	}

	category, err := u.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category.ShopID != shop.ID {
		return domainerrors.ErrForbidden
	}

	if err := u.categoryRepo.SoftDelete(ctx, categoryID); err != nil {
		return err
	}

	InvalidatePageCache(ctx, shop.Slug)
	return nil
}

// ReplaceHours swaps the owner's full weekly hours set
func (u *ContentUsecase) ReplaceHours(ctx context.Context, ownerID uuid.UUID, inputs []entities.ShopHoursInput) ([]*entities.ShopHours, error) {
	shop, err := u.ownedShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(inputs))
	hours := make([]*entities.ShopHours, 0, len(inputs))
	for _, in := range inputs {
		if in.DayOfWeek < 0 || in.DayOfWeek > 6 || seen[in.DayOfWeek] {
			return nil, domainerrors.ErrInvalidInput
		}
		seen[in.DayOfWeek] = true
		hours = append(hours, &entities.ShopHours{
			ID:        utils.GenerateUUIDv7(),
			ShopID:    shop.ID,
			DayOfWeek: in.DayOfWeek,
			OpensAt:   in.OpensAt,
			ClosesAt:  in.ClosesAt,
			IsClosed:  in.IsClosed,
		})
	}

	if err := u.hoursRepo.ReplaceForShop(ctx, shop.ID, hours); err != nil {
		return nil, err
	}

	InvalidatePageCache(ctx, shop.Slug)
	return u.hoursRepo.ListByShop(ctx, shop.ID)
}

// ListHours lists the owner's weekly hours
func (u *ContentUsecase) ListHours(ctx context.Context, ownerID uuid.UUID) ([]*entities.ShopHours, error) {
	shop, err := u.ownedShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return u.hoursRepo.ListByShop(ctx, shop.ID)
}
