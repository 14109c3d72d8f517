package usecases

import (
	"encoding/json"

	"makershop.backend/internal/domain/entities"
)

// builtinTemplates are the starter presets. Immutable; applying one
// replaces the draft's look wholesale, never merges.
var builtinTemplates = []entities.BuilderTemplate{
	{
		ID:          "classic-bakery",
		Name:        "Classic Bakery",
		Description: "Warm tones and a tall hero for baked goods",
		Colors: map[string]string{
			"primary":    "#b45309",
			"secondary":  "#d97706",
			"accent":     "#92400e",
			"background": "#fffbeb",
			"text":       "#451a03",
			"heading":    "#78350f",
		},
		HeadingFont: "Playfair Display",
		BodyFont:    "Lora",
		CardStyle:   "rounded",
		Hero:        entities.HeroSettings{Style: "image", Height: "tall", ShowTagline: true, ShowCTA: true},
		Sections: []entities.Section{
			{ID: "tpl-hero", SectionType: entities.SectionHero, Config: json.RawMessage(`{"height":"tall","showTagline":true,"showCTA":true,"ctaLabel":"Order Now"}`), IsVisible: true},
			{ID: "tpl-featured", SectionType: entities.SectionFeaturedProducts, Config: json.RawMessage(`{"title":"Fresh This Week","limit":4}`), IsVisible: true},
			{ID: "tpl-about", SectionType: entities.SectionAboutMe, Config: json.RawMessage(`{"title":"From My Kitchen"}`), IsVisible: true},
			{ID: "tpl-all", SectionType: entities.SectionAllProducts, Config: json.RawMessage(`{"title":"Full Menu","showCategoryFilter":true}`), IsVisible: true},
			{ID: "tpl-hours", SectionType: entities.SectionShopHours, Config: json.RawMessage(`{"title":"Bakery Hours"}`), IsVisible: true},
			{ID: "tpl-pickup", SectionType: entities.SectionPickupDetails, Config: json.RawMessage(`{"title":"Pickup","showMap":true}`), IsVisible: true},
		},
	},
	{
		ID:          "modern-minimal",
		Name:        "Modern Minimal",
		Description: "Monochrome palette, compact hero, products first",
		Colors: map[string]string{
			"primary":    "#18181b",
			"secondary":  "#52525b",
			"accent":     "#a1a1aa",
			"background": "#fafafa",
			"text":       "#27272a",
			"heading":    "#09090b",
		},
		HeadingFont: "Inter",
		BodyFont:    "Inter",
		CardStyle:   "flat",
		Hero:        entities.HeroSettings{Style: "solid", Height: "short", ShowTagline: false, ShowCTA: false},
		Sections: []entities.Section{
			{ID: "tpl-hero", SectionType: entities.SectionHero, Config: json.RawMessage(`{"height":"short","showTagline":false,"showCTA":false}`), IsVisible: true},
			{ID: "tpl-all", SectionType: entities.SectionAllProducts, Config: json.RawMessage(`{"showCategoryFilter":false}`), IsVisible: true},
			{ID: "tpl-divider", SectionType: entities.SectionDivider, Config: json.RawMessage(`{"style":"solid"}`), IsVisible: true},
			{ID: "tpl-newsletter", SectionType: entities.SectionNewsletterSignup, Config: json.RawMessage(`{"title":"Updates","buttonLabel":"Join"}`), IsVisible: true},
		},
	},
	{
		ID:          "garden-market",
		Name:        "Garden Market",
		Description: "Greens and a gradient backdrop for growers and makers",
		Colors: map[string]string{
			"primary":    "#15803d",
			"secondary":  "#65a30d",
			"accent":     "#ca8a04",
			"background": "#f0fdf4",
			"text":       "#14532d",
			"heading":    "#052e16",
		},
		HeadingFont: "Fraunces",
		BodyFont:    "Source Sans 3",
		CardStyle:   "rounded",
		Gradient:    "linear-gradient(180deg,#f0fdf4,#dcfce7)",
		Hero:        entities.HeroSettings{Style: "gradient", Height: "medium", ShowTagline: true, ShowCTA: true},
		Sections: []entities.Section{
			{ID: "tpl-hero", SectionType: entities.SectionHero, Config: json.RawMessage(`{"height":"medium","showTagline":true,"showCTA":true,"ctaLabel":"See What's Growing"}`), IsVisible: true},
			{ID: "tpl-categories", SectionType: entities.SectionProductCategories, Config: json.RawMessage(`{"title":"In Season"}`), IsVisible: true},
			{ID: "tpl-featured", SectionType: entities.SectionFeaturedProducts, Config: json.RawMessage(`{"title":"Picked Today","limit":6}`), IsVisible: true},
			{ID: "tpl-about", SectionType: entities.SectionAboutMe, Config: json.RawMessage(`{"title":"Our Garden"}`), IsVisible: true},
			{ID: "tpl-faq", SectionType: entities.SectionFAQ, Config: json.RawMessage(`{"items":[]}`), IsVisible: true},
			{ID: "tpl-pickup", SectionType: entities.SectionPickupDetails, Config: json.RawMessage(`{"title":"Farm Pickup","showMap":true}`), IsVisible: true},
		},
	},
}

// GetTemplate looks up one preset by ID
func GetTemplate(id string) (*entities.BuilderTemplate, bool) {
	for i := range builtinTemplates {
		if builtinTemplates[i].ID == id {
			return &builtinTemplates[i], true
		}
	}
	return nil, false
}

// ListTemplates returns all presets
func ListTemplates() []entities.BuilderTemplate {
	out := make([]entities.BuilderTemplate, len(builtinTemplates))
	copy(out, builtinTemplates)
	return out
}
