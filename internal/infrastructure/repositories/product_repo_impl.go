package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"makershop.backend/internal/domain/entities"
	domainerrors "makershop.backend/internal/domain/errors"
	"makershop.backend/internal/infrastructure/models"
)

// ProductRepository implements product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	m, err := productToModel(product)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return productToEntity(&m), nil
}

// ListByShop lists a shop's products, featured first then newest
func (r *ProductRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entities.Product, error) {
	var productModels []models.Product
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("is_featured DESC, created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}

	var products []*entities.Product
	for _, m := range productModels {
		model := m
		products = append(products, productToEntity(&model))
	}
	return products, nil
}

// Update updates a product
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	m, err := productToModel(product)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"category_id":  m.CategoryID,
		"name":         m.Name,
		"description":  m.Description,
		"price_cents":  m.PriceCents,
		"image_url":    m.ImageURL,
		"is_featured":  m.IsFeatured,
		"is_available": m.IsAvailable,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a product
func (r *ProductRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func productToModel(p *entities.Product) (*models.Product, error) {
	var categoryID *uuid.UUID
	if p.CategoryID.Valid {
		parsed, err := uuid.Parse(p.CategoryID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid category id: %w", err)
		}
		categoryID = &parsed
	}

	return &models.Product{
		ID:          p.ID,
		ShopID:      p.ShopID,
		CategoryID:  categoryID,
		Name:        p.Name,
		Description: p.Description.Ptr(),
		PriceCents:  p.PriceCents,
		ImageURL:    p.ImageURL.Ptr(),
		IsFeatured:  p.IsFeatured,
		IsAvailable: p.IsAvailable,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func productToEntity(m *models.Product) *entities.Product {
	categoryID := null.String{}
	if m.CategoryID != nil {
		categoryID = null.StringFrom(m.CategoryID.String())
	}

	return &entities.Product{
		ID:          m.ID,
		ShopID:      m.ShopID,
		CategoryID:  categoryID,
		Name:        m.Name,
		Description: null.StringFromPtr(m.Description),
		PriceCents:  m.PriceCents,
		ImageURL:    null.StringFromPtr(m.ImageURL),
		IsFeatured:  m.IsFeatured,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
