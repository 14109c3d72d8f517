package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"makershop.backend/internal/domain/entities"
	domainerrors "makershop.backend/internal/domain/errors"
	"makershop.backend/internal/infrastructure/models"
	"makershop.backend/pkg/logger"
)

// DesignTokenRepository implements design token row operations. The
// active-row invariant is enforced by a partial unique index; callers
// sequence DeactivateActive and Create inside a unit of work.
type DesignTokenRepository struct {
	db *gorm.DB
}

// NewDesignTokenRepository creates a new design token repository
func NewDesignTokenRepository(db *gorm.DB) *DesignTokenRepository {
	return &DesignTokenRepository{db: db}
}

// Create persists a new token row
func (r *DesignTokenRepository) Create(ctx context.Context, tokens *entities.ShopDesignTokens) error {
	db := GetDB(ctx, r.db)

	raw, err := json.Marshal(tokens.Tokens)
	if err != nil {
		return fmt.Errorf("failed to marshal token bundle: %w", err)
	}

	m := &models.ShopDesignTokens{
		ID:        tokens.ID,
		ShopID:    tokens.ShopID,
		Tokens:    string(raw),
		IsActive:  tokens.IsActive,
		CreatedBy: tokens.CreatedBy,
		CreatedAt: tokens.CreatedAt,
		UpdatedAt: tokens.UpdatedAt,
	}
	return db.WithContext(ctx).Create(m).Error
}

// GetActiveByShop returns the shop's active token row
func (r *DesignTokenRepository) GetActiveByShop(ctx context.Context, shopID uuid.UUID) (*entities.ShopDesignTokens, error) {
	db := GetDB(ctx, r.db)

	var m models.ShopDesignTokens
	err := db.WithContext(ctx).
		Where("shop_id = ? AND is_active = ?", shopID, true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return tokensToEntity(ctx, &m), nil
}

// UpdateTokens overwrites the bundle on an existing row
func (r *DesignTokenRepository) UpdateTokens(ctx context.Context, id uuid.UUID, bundle entities.TokenBundle) error {
	db := GetDB(ctx, r.db)

	raw, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to marshal token bundle: %w", err)
	}

	result := db.WithContext(ctx).Model(&models.ShopDesignTokens{}).Where("id = ?", id).Updates(map[string]interface{}{
		"tokens":     string(raw),
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

// DeactivateActive clears the active flag on the shop's current active
// row. A shop with no active row is not an error.
func (r *DesignTokenRepository) DeactivateActive(ctx context.Context, shopID uuid.UUID) error {
	db := GetDB(ctx, r.db)

	return db.WithContext(ctx).Model(&models.ShopDesignTokens{}).
		Where("shop_id = ? AND is_active = ?", shopID, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

// PruneInactiveBefore deletes inactive history rows last touched before
// the cutoff
func (r *DesignTokenRepository) PruneInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	db := GetDB(ctx, r.db)

	result := db.WithContext(ctx).
		Where("is_active = ? AND updated_at < ?", false, cutoff).
		Delete(&models.ShopDesignTokens{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// tokensToEntity maps a row to its entity. A malformed tokens column
// yields a zero bundle so reads fall through to shop columns and
// defaults instead of failing.
func tokensToEntity(ctx context.Context, m *models.ShopDesignTokens) *entities.ShopDesignTokens {
	var bundle entities.TokenBundle
	if m.Tokens != "" {
		if err := json.Unmarshal([]byte(m.Tokens), &bundle); err != nil {
			logger.Warn(ctx, "malformed token bundle, falling back to defaults",
				zap.String("tokenRowId", m.ID.String()), zap.Error(err))
			bundle = entities.TokenBundle{}
		}
	}
	return &entities.ShopDesignTokens{
		ID:        m.ID,
		ShopID:    m.ShopID,
		Tokens:    bundle,
		IsActive:  m.IsActive,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
