package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"makershop.backend/internal/domain/entities"
	domainerrors "makershop.backend/internal/domain/errors"
	"makershop.backend/internal/infrastructure/models"
)

// CategoryRepository implements category data operations
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	m := &models.Category{
		ID:        category.ID,
		ShopID:    category.ShopID,
		Name:      category.Name,
		Position:  category.Position,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	var m models.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return categoryToEntity(&m), nil
}

// ListByShop lists a shop's categories in display order
func (r *CategoryRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entities.Category, error) {
	var categoryModels []models.Category
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("position ASC, created_at ASC").
		Find(&categoryModels).Error
	if err != nil {
		return nil, err
	}

	var categories []*entities.Category
	for _, m := range categoryModels {
		model := m
		categories = append(categories, categoryToEntity(&model))
	}
	return categories, nil
}

// Update updates a category
func (r *CategoryRepository) Update(ctx context.Context, category *entities.Category) error {
	result := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", category.ID).Updates(map[string]interface{}{
		"name":       category.Name,
		"position":   category.Position,
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

// SoftDelete soft deletes a category
func (r *CategoryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func categoryToEntity(m *models.Category) *entities.Category {
	return &entities.Category{
		ID:        m.ID,
		ShopID:    m.ShopID,
		Name:      m.Name,
		Position:  m.Position,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
