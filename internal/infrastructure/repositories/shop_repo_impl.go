package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"makershop.backend/internal/domain/entities"
	domainerrors "makershop.backend/internal/domain/errors"
	"makershop.backend/internal/infrastructure/models"
)

// ShopRepository implements shop data operations. Writes go through
// GetDB so the save pipeline can run them inside a unit of work.
type ShopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new shop repository
func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

// Create creates a new shop. A slug collision that slipped past the
// existence probe surfaces as ErrAlreadyExists so the caller can retry
// with a fresh slug.
func (r *ShopRepository) Create(ctx context.Context, shop *entities.Shop) error {
	db := GetDB(ctx, r.db)
	m := shopToModel(shop)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a shop by ID
func (r *ShopRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Shop, error) {
	db := GetDB(ctx, r.db)
	var m models.Shop
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return shopToEntity(&m), nil
}

// GetBySlug gets a shop by slug
func (r *ShopRepository) GetBySlug(ctx context.Context, slug string) (*entities.Shop, error) {
	db := GetDB(ctx, r.db)
	var m models.Shop
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return shopToEntity(&m), nil
}

// GetLatestByOwner returns the owner's most recently created shop
func (r *ShopRepository) GetLatestByOwner(ctx context.Context, ownerID uuid.UUID) (*entities.Shop, error) {
	db := GetDB(ctx, r.db)
	var m models.Shop
	err := db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return shopToEntity(&m), nil
}

// Update overwrites a shop's mutable fields
func (r *ShopRepository) Update(ctx context.Context, shop *entities.Shop) error {
	db := GetDB(ctx, r.db)
	m := shopToModel(shop)
	m.UpdatedAt = time.Now()

	result := db.WithContext(ctx).Model(&models.Shop{}).Where("id = ?", shop.ID).Updates(map[string]interface{}{
		"name":                     m.Name,
		"tagline":                  m.Tagline,
		"description":              m.Description,
		"primary_color":            m.PrimaryColor,
		"secondary_color":          m.SecondaryColor,
		"accent_color":             m.AccentColor,
		"background_color":         m.BackgroundColor,
		"text_color":               m.TextColor,
		"heading_color":            m.HeadingColor,
		"heading_font":             m.HeadingFont,
		"body_font":                m.BodyFont,
		"nav_background_color":     m.NavBackgroundColor,
		"nav_text_color":           m.NavTextColor,
		"hero_style":               m.HeroStyle,
		"hero_height":              m.HeroHeight,
		"hero_media_url":           m.HeroMediaURL,
		"background_pattern":       m.BackgroundPattern,
		"background_gradient":      m.BackgroundGradient,
		"background_image_url":     m.BackgroundImageURL,
		"background_opacity":       m.BackgroundOpacity,
		"app_background_pattern":   m.AppBackgroundPattern,
		"app_background_gradient":  m.AppBackgroundGradient,
		"app_background_image_url": m.AppBackgroundImageURL,
		"app_background_opacity":   m.AppBackgroundOpacity,
		"is_public":                m.IsPublic,
		"accepting_orders":         m.AcceptingOrders,
		"city":                     m.City,
		"region":                   m.Region,
		"pickup_instructions":      m.PickupInstructions,
		"updated_at":               m.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SlugExists reports whether any shop, including soft-deleted ones,
// holds the slug. Deleted shops keep their slug reserved.
func (r *ShopRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	db := GetDB(ctx, r.db)
	var count int64
	err := db.WithContext(ctx).Unscoped().Model(&models.Shop{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetVisibility toggles the public flag
func (r *ShopRepository) SetVisibility(ctx context.Context, id uuid.UUID, isPublic bool) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Shop{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_public":  isPublic,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists shops newest first
func (r *ShopRepository) List(ctx context.Context) ([]*entities.Shop, error) {
	db := GetDB(ctx, r.db)
	var shopModels []models.Shop
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&shopModels).Error; err != nil {
		return nil, err
	}

	var shops []*entities.Shop
	for _, m := range shopModels {
		model := m
		shops = append(shops, shopToEntity(&model))
	}
	return shops, nil
}

// Count counts non-deleted shops
func (r *ShopRepository) Count(ctx context.Context) (int64, error) {
	db := GetDB(ctx, r.db)
	var count int64
	if err := db.WithContext(ctx).Model(&models.Shop{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// isUniqueViolation detects a unique index violation from either the
// postgres driver or the sqlite driver used in tests.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func shopToModel(s *entities.Shop) *models.Shop {
	return &models.Shop{
		ID:          s.ID,
		Slug:        s.Slug,
		Name:        s.Name,
		Tagline:     s.Tagline.Ptr(),
		Description: s.Description.Ptr(),

		PrimaryColor:    s.PrimaryColor.Ptr(),
		SecondaryColor:  s.SecondaryColor.Ptr(),
		AccentColor:     s.AccentColor.Ptr(),
		BackgroundColor: s.BackgroundColor.Ptr(),
		TextColor:       s.TextColor.Ptr(),
		HeadingColor:    s.HeadingColor.Ptr(),
		HeadingFont:     s.HeadingFont.Ptr(),
		BodyFont:        s.BodyFont.Ptr(),

		NavBackgroundColor: s.NavBackgroundColor.Ptr(),
		NavTextColor:       s.NavTextColor.Ptr(),
		HeroStyle:          s.HeroStyle.Ptr(),
		HeroHeight:         s.HeroHeight.Ptr(),
		HeroMediaURL:       s.HeroMediaURL.Ptr(),
		BackgroundPattern:  s.BackgroundPattern.Ptr(),
		BackgroundGradient: s.BackgroundGradient.Ptr(),
		BackgroundImageURL: s.BackgroundImageURL.Ptr(),
		BackgroundOpacity:  s.BackgroundOpacity.Ptr(),

		AppBackgroundPattern:  s.AppBackgroundPattern.Ptr(),
		AppBackgroundGradient: s.AppBackgroundGradient.Ptr(),
		AppBackgroundImageURL: s.AppBackgroundImageURL.Ptr(),
		AppBackgroundOpacity:  s.AppBackgroundOpacity.Ptr(),

		IsPublic:        s.IsPublic,
		AcceptingOrders: s.AcceptingOrders,

		City:               s.City.Ptr(),
		Region:             s.Region.Ptr(),
		PickupInstructions: s.PickupInstructions.Ptr(),

		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func shopToEntity(m *models.Shop) *entities.Shop {
	return &entities.Shop{
		ID:          m.ID,
		Slug:        m.Slug,
		Name:        m.Name,
		Tagline:     null.StringFromPtr(m.Tagline),
		Description: null.StringFromPtr(m.Description),

		PrimaryColor:    null.StringFromPtr(m.PrimaryColor),
		SecondaryColor:  null.StringFromPtr(m.SecondaryColor),
		AccentColor:     null.StringFromPtr(m.AccentColor),
		BackgroundColor: null.StringFromPtr(m.BackgroundColor),
		TextColor:       null.StringFromPtr(m.TextColor),
		HeadingColor:    null.StringFromPtr(m.HeadingColor),
		HeadingFont:     null.StringFromPtr(m.HeadingFont),
		BodyFont:        null.StringFromPtr(m.BodyFont),

		NavBackgroundColor: null.StringFromPtr(m.NavBackgroundColor),
		NavTextColor:       null.StringFromPtr(m.NavTextColor),
		HeroStyle:          null.StringFromPtr(m.HeroStyle),
		HeroHeight:         null.StringFromPtr(m.HeroHeight),
		HeroMediaURL:       null.StringFromPtr(m.HeroMediaURL),
		BackgroundPattern:  null.StringFromPtr(m.BackgroundPattern),
		BackgroundGradient: null.StringFromPtr(m.BackgroundGradient),
		BackgroundImageURL: null.StringFromPtr(m.BackgroundImageURL),
		BackgroundOpacity:  null.Float64FromPtr(m.BackgroundOpacity),

		AppBackgroundPattern:  null.StringFromPtr(m.AppBackgroundPattern),
		AppBackgroundGradient: null.StringFromPtr(m.AppBackgroundGradient),
		AppBackgroundImageURL: null.StringFromPtr(m.AppBackgroundImageURL),
		AppBackgroundOpacity:  null.Float64FromPtr(m.AppBackgroundOpacity),

		IsPublic:        m.IsPublic,
		AcceptingOrders: m.AcceptingOrders,

		City:               null.StringFromPtr(m.City),
		Region:             null.StringFromPtr(m.Region),
		PickupInstructions: null.StringFromPtr(m.PickupInstructions),

		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
