package usecases

import (
	"encoding/json"

	"makershop.backend/internal/domain/entities"
)

// RenderContext is the shared data the renderer merges with per-section
// config
type RenderContext struct {
	Shop       *entities.Shop
	Products   []*entities.Product
	Categories []*entities.Category
	Hours      []*entities.ShopHours
}

// ComposePage renders the section list into ordered view models.
// Sections render in array order; hidden sections and unknown section
// types are skipped silently. Duplicate types all render, singleton
// flag or not.
func ComposePage(sections []entities.Section, theme entities.Theme, rctx RenderContext) []entities.RenderedSection {
	rendered := make([]entities.RenderedSection, 0, len(sections))
	for _, section := range sections {
		if !section.IsVisible {
			continue
		}
		data, ok := renderSection(section, theme, rctx)
		if !ok {
			continue
		}
		rendered = append(rendered, entities.RenderedSection{
			ID:   section.ID,
			Type: section.SectionType,
			Data: data,
		})
	}
	return rendered
}

func renderSection(section entities.Section, theme entities.Theme, rctx RenderContext) (interface{}, bool) {
	switch section.SectionType {
	case entities.SectionHero:
		return renderHero(section.Config, theme, rctx.Shop), true
	case entities.SectionFeaturedProducts:
		return renderFeaturedProducts(section.Config, rctx.Products), true
	case entities.SectionProductCategories:
		return renderCategories(section.Config, rctx.Categories), true
	case entities.SectionAllProducts:
		return renderAllProducts(section.Config, rctx.Products), true
	case entities.SectionAboutMe:
		var cfg entities.AboutMeConfig
		decodeConfig(section.Config, &cfg)
		return entities.AboutView{Title: cfg.Title, Body: cfg.Body, ImageURL: cfg.ImageURL}, true
	case entities.SectionReviews:
		var cfg entities.ReviewsConfig
		decodeConfig(section.Config, &cfg)
		return entities.ReviewsView{Title: cfg.Title, Items: cfg.Items}, true
	case entities.SectionPickupDetails:
		return renderPickup(section.Config, rctx.Shop), true
	case entities.SectionShopHours:
		var cfg entities.ShopHoursConfig
		decodeConfig(section.Config, &cfg)
		return entities.HoursView{Title: cfg.Title, Hours: rctx.Hours}, true
	case entities.SectionFAQ:
		var cfg entities.FAQConfig
		decodeConfig(section.Config, &cfg)
		return entities.FAQView{Items: cfg.Items}, true
	case entities.SectionInstagramFeed:
		var cfg entities.InstagramFeedConfig
		decodeConfig(section.Config, &cfg)
		return entities.InstagramView{Handle: cfg.Handle, Limit: cfg.Limit}, true
	case entities.SectionNewsletterSignup:
		var cfg entities.NewsletterSignupConfig
		decodeConfig(section.Config, &cfg)
		return entities.NewsletterView{Title: cfg.Title, ButtonLabel: cfg.ButtonLabel}, true
	case entities.SectionCustomText:
		var cfg entities.CustomTextConfig
		decodeConfig(section.Config, &cfg)
		return entities.CustomTextView{Title: cfg.Title, Body: cfg.Body, Alignment: cfg.Alignment}, true
	case entities.SectionDivider:
		var cfg entities.DividerConfig
		decodeConfig(section.Config, &cfg)
		return entities.DividerView{Style: cfg.Style}, true
	case entities.SectionSpacer:
		var cfg entities.SpacerConfig
		decodeConfig(section.Config, &cfg)
		return entities.SpacerView{Height: cfg.Height}, true
	}
	return nil, false
}

func renderHero(raw json.RawMessage, theme entities.Theme, shop *entities.Shop) entities.HeroView {
	var cfg entities.HeroConfig
	decodeConfig(raw, &cfg)

	view := entities.HeroView{
		Title:       shop.Name,
		Height:      cfg.Height,
		Style:       theme.HeroStyle,
		MediaURL:    theme.HeroMediaURL,
		ShowCTA:     cfg.ShowCTA,
		CTALabel:    cfg.CTALabel,
		ShowTagline: cfg.ShowTagline,
	}
	if view.Height == "" {
		view.Height = theme.HeroHeight
	}
	if cfg.ShowTagline && shop.Tagline.Valid {
		view.Tagline = shop.Tagline.String
	}
	return view
}

func renderFeaturedProducts(raw json.RawMessage, products []*entities.Product) entities.ProductGridView {
	var cfg entities.FeaturedProductsConfig
	decodeConfig(raw, &cfg)
	limit := cfg.Limit
	if limit <= 0 {
		limit = 4
	}

	featured := make([]*entities.Product, 0, limit)
	for _, p := range products {
		if !p.IsFeatured || !p.IsAvailable {
			continue
		}
		featured = append(featured, p)
		if len(featured) == limit {
			break
		}
	}
	return entities.ProductGridView{Title: cfg.Title, Products: featured}
}

func renderAllProducts(raw json.RawMessage, products []*entities.Product) entities.ProductGridView {
	var cfg entities.AllProductsConfig
	decodeConfig(raw, &cfg)

	available := make([]*entities.Product, 0, len(products))
	for _, p := range products {
		if p.IsAvailable {
			available = append(available, p)
		}
	}
	return entities.ProductGridView{
		Title:              cfg.Title,
		Products:           available,
		ShowCategoryFilter: cfg.ShowCategoryFilter,
	}
}

func renderCategories(raw json.RawMessage, categories []*entities.Category) entities.CategoryListView {
	var cfg entities.ProductCategoriesConfig
	decodeConfig(raw, &cfg)
	if categories == nil {
		categories = []*entities.Category{}
	}
	return entities.CategoryListView{Title: cfg.Title, Categories: categories}
}

func renderPickup(raw json.RawMessage, shop *entities.Shop) entities.PickupView {
	var cfg entities.PickupDetailsConfig
	decodeConfig(raw, &cfg)
	return entities.PickupView{
		Title:        cfg.Title,
		City:         shop.City.String,
		Region:       shop.Region.String,
		Instructions: shop.PickupInstructions.String,
		ShowMap:      cfg.ShowMap,
	}
}

// decodeConfig tolerates absent or malformed config; the view model
// keeps zero values in that case.
func decodeConfig(raw json.RawMessage, dest interface{}) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, dest)
}
