package usecases

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"makershop.backend/internal/config"
	"makershop.backend/internal/domain/entities"
	domainerrors "makershop.backend/internal/domain/errors"
	"makershop.backend/internal/domain/repositories"
	"makershop.backend/pkg/logger"
	"makershop.backend/pkg/utils"
)

// slugCreateRetries bounds how often a save re-probes after losing a
// slug race at insert time
const slugCreateRetries = 3

// BuilderUsecase implements the builder save pipeline
type BuilderUsecase struct {
	shopRepo  repositories.ShopRepository
	tokenRepo repositories.DesignTokenRepository
	uow       repositories.UnitOfWork
	cfg       config.BuilderConfig
}

// NewBuilderUsecase creates a new builder usecase
func NewBuilderUsecase(
	shopRepo repositories.ShopRepository,
	tokenRepo repositories.DesignTokenRepository,
	uow repositories.UnitOfWork,
	cfg config.BuilderConfig,
) *BuilderUsecase {
	return &BuilderUsecase{
		shopRepo:  shopRepo,
		tokenRepo: tokenRepo,
		uow:       uow,
		cfg:       cfg,
	}
}

// Save persists the full builder draft. The payload is the source of
// truth: every save overwrites the shop row and the active token bundle
// wholesale, so resubmitting an identical payload is idempotent. Shop
// and token writes share one transaction.
func (u *BuilderUsecase) Save(ctx context.Context, userID uuid.UUID, payload *entities.BuilderPayload) (*entities.SaveResult, error) {
	return u.save(ctx, userID, payload, false)
}

func (u *BuilderUsecase) save(ctx context.Context, userID uuid.UUID, payload *entities.BuilderPayload, rotateTokens bool) (*entities.SaveResult, error) {
	if payload.Overview.Name == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	shop, err := u.resolveTargetShop(ctx, userID, payload)
	if err != nil {
		return nil, err
	}

	if shop == nil {
		return u.createShop(ctx, userID, payload)
	}
	return u.updateShop(ctx, userID, shop, payload, rotateTokens)
}

// GetBuilderState returns the owner's current draft for the builder UI
func (u *BuilderUsecase) GetBuilderState(ctx context.Context, userID uuid.UUID) (*entities.BuilderState, error) {
	shop, err := u.shopRepo.GetLatestByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	state := &entities.BuilderState{Shop: shop, Sections: []entities.Section{}}

	tokensRow, err := u.tokenRepo.GetActiveByShop(ctx, shop.ID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		return state, nil
	}

	state.Tokens = &tokensRow.Tokens
	if tokensRow.Tokens.Sections != nil {
		state.Sections = tokensRow.Tokens.Sections
	}
	return state, nil
}

// ApplyTemplate replaces the owner's draft look with a preset: colors,
// fonts, card style, hero settings, and the whole section list. No
// merging with the previous state; operational fields (name, visibility,
// pickup) are carried over unchanged. Runs through Save, so the previous
// active token row is deactivated and kept as history.
func (u *BuilderUsecase) ApplyTemplate(ctx context.Context, userID uuid.UUID, templateID string) (*entities.SaveResult, error) {
	tpl, ok := GetTemplate(templateID)
	if !ok {
		return nil, domainerrors.ErrUnknownTemplate
	}

	shop, err := u.shopRepo.GetLatestByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload := &entities.BuilderPayload{
		ShopID: &shop.ID,
		Overview: entities.BuilderOverview{
			Name:               shop.Name,
			Tagline:            shop.Tagline.String,
			Description:        shop.Description.String,
			IsPublic:           shop.IsPublic,
			AcceptingOrders:    shop.AcceptingOrders,
			City:               shop.City.String,
			Region:             shop.Region.String,
			PickupInstructions: shop.PickupInstructions.String,
		},
		Design: entities.BuilderDesign{
			Colors:      tpl.Colors,
			HeadingFont: tpl.HeadingFont,
			BodyFont:    tpl.BodyFont,
			CardStyle:   tpl.CardStyle,
			Hero:        &tpl.Hero,
		},
		Sections: tpl.Sections,
	}
	if tpl.Gradient != "" {
		payload.Web = &entities.BuilderWebSurface{BackgroundGradient: tpl.Gradient}
	}

	return u.save(ctx, userID, payload, true)
}

// resolveTargetShop picks the shop this save writes to: the payload's
// shop when the caller owns it, otherwise the caller's most recent
// shop, otherwise nil (create).
func (u *BuilderUsecase) resolveTargetShop(ctx context.Context, userID uuid.UUID, payload *entities.BuilderPayload) (*entities.Shop, error) {
	if payload.ShopID != nil {
		shop, err := u.shopRepo.GetByID(ctx, *payload.ShopID)
		if err == nil && shop.CreatedBy == userID {
			return shop, nil
		}
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
	}

	shop, err := u.shopRepo.GetLatestByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return shop, nil
}

func (u *BuilderUsecase) createShop(ctx context.Context, userID uuid.UUID, payload *entities.BuilderPayload) (*entities.SaveResult, error) {
	var shop *entities.Shop

	for attempt := 0; ; attempt++ {
		slug, err := u.resolveSlug(ctx, payload.Overview.Name)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		shop = &entities.Shop{
			ID:        utils.GenerateUUIDv7(),
			Slug:      slug,
			CreatedBy: userID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		applyPayloadToShop(shop, payload)

		err = u.uow.Do(ctx, func(txCtx context.Context) error {
			if err := u.shopRepo.Create(txCtx, shop); err != nil {
				return err
			}
			return u.upsertTokens(txCtx, userID, shop.ID, payload, false)
		})
		if err == nil {
			break
		}
		// Lost the slug to a concurrent save between probe and insert.
		// Re-probe and try again.
		if errors.Is(err, domainerrors.ErrAlreadyExists) && attempt < slugCreateRetries {
			logger.Warn(ctx, "slug taken at insert, re-probing", zap.String("slug", slug))
			continue
		}
		return nil, err
	}

	return &entities.SaveResult{ID: shop.ID, Slug: shop.Slug, Name: shop.Name}, nil
}

func (u *BuilderUsecase) updateShop(ctx context.Context, userID uuid.UUID, shop *entities.Shop, payload *entities.BuilderPayload, rotateTokens bool) (*entities.SaveResult, error) {
	applyPayloadToShop(shop, payload)

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.shopRepo.Update(txCtx, shop); err != nil {
			return err
		}
		return u.upsertTokens(txCtx, userID, shop.ID, payload, rotateTokens)
	})
	if err != nil {
		return nil, err
	}

	InvalidatePageCache(ctx, shop.Slug)

	return &entities.SaveResult{ID: shop.ID, Slug: shop.Slug, Name: shop.Name}, nil
}

// upsertTokens writes the payload's bundle into the shop's active token
// row, inserting one when none exists. With rotateTokens set the current
// active row is deactivated and kept as history, and a fresh active row
// is inserted. Must run inside the save transaction.
func (u *BuilderUsecase) upsertTokens(ctx context.Context, userID, shopID uuid.UUID, payload *entities.BuilderPayload, rotateTokens bool) error {
	bundle := buildTokenBundle(payload)

	active, err := u.tokenRepo.GetActiveByShop(ctx, shopID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	if active != nil && !rotateTokens {
		return u.tokenRepo.UpdateTokens(ctx, active.ID, bundle)
	}

	if active != nil {
		if err := u.tokenRepo.DeactivateActive(ctx, shopID); err != nil {
			return err
		}
	}

	now := time.Now()
	return u.tokenRepo.Create(ctx, &entities.ShopDesignTokens{
		ID:        utils.GenerateUUIDv7(),
		ShopID:    shopID,
		Tokens:    bundle,
		IsActive:  true,
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// resolveSlug turns the shop name into a unique slug: slugify, probe
// numeric suffixes up to the configured ceiling, then force a timestamp
// suffix rather than fail the save.
func (u *BuilderUsecase) resolveSlug(ctx context.Context, name string) (string, error) {
	base := utils.Slugify(name, u.cfg.SlugMaxLength)
	if base == "" {
		base = "shop"
	}

	exists, err := u.shopRepo.SlugExists(ctx, base)
	if err != nil {
		return "", err
	}
	if !exists {
		return base, nil
	}

	for i := 2; i <= u.cfg.SlugProbeLimit; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		exists, err := u.shopRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return fmt.Sprintf("%s-%d", base, time.Now().Unix()), nil
}

// applyPayloadToShop overwrites the shop's mutable fields from the
// draft. Absent payload fields clear their columns; nothing is carried
// over from the previous save.
func applyPayloadToShop(shop *entities.Shop, payload *entities.BuilderPayload) {
	ov := payload.Overview
	shop.Name = ov.Name
	shop.Tagline = nullIfEmpty(ov.Tagline)
	shop.Description = nullIfEmpty(ov.Description)
	shop.IsPublic = ov.IsPublic
	shop.AcceptingOrders = ov.AcceptingOrders
	shop.City = nullIfEmpty(ov.City)
	shop.Region = nullIfEmpty(ov.Region)
	shop.PickupInstructions = nullIfEmpty(ov.PickupInstructions)

	colors := payload.Design.Colors
	shop.PrimaryColor = nullIfEmpty(colors["primary"])
	shop.SecondaryColor = nullIfEmpty(colors["secondary"])
	shop.AccentColor = nullIfEmpty(colors["accent"])
	shop.BackgroundColor = nullIfEmpty(colors["background"])
	shop.TextColor = nullIfEmpty(colors["text"])
	shop.HeadingColor = nullIfEmpty(colors["heading"])
	shop.HeadingFont = nullIfEmpty(payload.Design.HeadingFont)
	shop.BodyFont = nullIfEmpty(payload.Design.BodyFont)

	shop.HeroStyle = null.String{}
	shop.HeroHeight = null.String{}
	shop.HeroMediaURL = null.String{}
	if hero := payload.Design.Hero; hero != nil {
		shop.HeroStyle = nullIfEmpty(hero.Style)
		shop.HeroHeight = nullIfEmpty(hero.Height)
		shop.HeroMediaURL = nullIfEmpty(hero.MediaURL)
	}

	shop.NavBackgroundColor = null.String{}
	shop.NavTextColor = null.String{}
	shop.BackgroundPattern = null.String{}
	shop.BackgroundGradient = null.String{}
	shop.BackgroundImageURL = null.String{}
	shop.BackgroundOpacity = null.Float64{}
	if web := payload.Web; web != nil {
		shop.NavBackgroundColor = nullIfEmpty(web.NavBackgroundColor)
		shop.NavTextColor = nullIfEmpty(web.NavTextColor)
		shop.BackgroundPattern = nullIfEmpty(web.BackgroundPattern)
		shop.BackgroundGradient = nullIfEmpty(web.BackgroundGradient)
		shop.BackgroundImageURL = nullIfEmpty(web.BackgroundImageURL)
		shop.BackgroundOpacity = null.Float64FromPtr(web.BackgroundOpacity)
	}

	shop.AppBackgroundPattern = null.String{}
	shop.AppBackgroundGradient = null.String{}
	shop.AppBackgroundImageURL = null.String{}
	shop.AppBackgroundOpacity = null.Float64{}
	if app := payload.App; app != nil && app.Background != nil {
		shop.AppBackgroundPattern = nullIfEmpty(app.Background.Pattern)
		shop.AppBackgroundGradient = nullIfEmpty(app.Background.Gradient)
		shop.AppBackgroundImageURL = nullIfEmpty(app.Background.ImageURL)
		shop.AppBackgroundOpacity = null.Float64FromPtr(app.Background.Opacity)
	}

	shop.UpdatedAt = time.Now()
}

// buildTokenBundle assembles the persisted JSON bundle from the draft
func buildTokenBundle(payload *entities.BuilderPayload) entities.TokenBundle {
	bundle := entities.TokenBundle{
		Colors:    payload.Design.Colors,
		CardStyle: payload.Design.CardStyle,
		Sections:  payload.Sections,
	}
	if bundle.Sections == nil {
		bundle.Sections = []entities.Section{}
	}

	if payload.Design.HeadingFont != "" || payload.Design.BodyFont != "" {
		bundle.Typography = &entities.Typography{
			FontFamily: entities.FontFamily{
				Heading: payload.Design.HeadingFont,
				Body:    payload.Design.BodyFont,
			},
		}
	}

	if app := payload.App; app != nil {
		bundle.App = &entities.AppTokens{
			CardStyle:  app.CardStyle,
			IconTheme:  app.IconTheme,
			Background: app.Background,
		}
	}

	return bundle
}

func nullIfEmpty(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
