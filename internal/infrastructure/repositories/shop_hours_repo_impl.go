package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"makershop.backend/internal/domain/entities"
	"makershop.backend/internal/infrastructure/models"
)

// ShopHoursRepository implements opening hours operations
type ShopHoursRepository struct {
	db *gorm.DB
}

// NewShopHoursRepository creates a new shop hours repository
func NewShopHoursRepository(db *gorm.DB) *ShopHoursRepository {
	return &ShopHoursRepository{db: db}
}

// ReplaceForShop swaps the shop's weekly set atomically. Runs inside
// the caller's transaction when one is in the context.
func (r *ShopHoursRepository) ReplaceForShop(ctx context.Context, shopID uuid.UUID, hours []*entities.ShopHours) error {
	db := GetDB(ctx, r.db)

	if err := db.WithContext(ctx).Where("shop_id = ?", shopID).Delete(&models.ShopHours{}).Error; err != nil {
		return err
	}

	now := time.Now()
	for _, h := range hours {
		m := &models.ShopHours{
			ID:        h.ID,
			ShopID:    shopID,
			DayOfWeek: h.DayOfWeek,
			OpensAt:   h.OpensAt,
			ClosesAt:  h.ClosesAt,
			IsClosed:  h.IsClosed,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		if err := db.WithContext(ctx).Create(m).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListByShop lists a shop's hours ordered by weekday
func (r *ShopHoursRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entities.ShopHours, error) {
	db := GetDB(ctx, r.db)

	var hourModels []models.ShopHours
	err := db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("day_of_week ASC").
		Find(&hourModels).Error
	if err != nil {
		return nil, err
	}

	var hours []*entities.ShopHours
	for _, m := range hourModels {
		hours = append(hours, &entities.ShopHours{
			ID:        m.ID,
			ShopID:    m.ShopID,
			DayOfWeek: m.DayOfWeek,
			OpensAt:   m.OpensAt,
			ClosesAt:  m.ClosesAt,
			IsClosed:  m.IsClosed,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return hours, nil
}
