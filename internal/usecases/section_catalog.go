package usecases

import (
	"encoding/json"

	"makershop.backend/internal/domain/entities"
)

// sectionCatalog is the closed set of section types the builder offers.
// Order here is the order the builder UI menu shows them in. The
// singleton flag is an authoring hint; nothing downstream enforces it.
var sectionCatalog = []entities.SectionDefinition{
	{
		Type:          entities.SectionHero,
		Name:          "Hero Banner",
		Icon:          "image",
		Category:      "header",
		Singleton:     true,
		DefaultConfig: json.RawMessage(`{"height":"medium","showTagline":true,"showCTA":true,"ctaLabel":"Shop Now"}`),
	},
	{
		Type:          entities.SectionFeaturedProducts,
		Name:          "Featured Products",
		Icon:          "star",
		Category:      "products",
		DefaultConfig: json.RawMessage(`{"title":"Featured","limit":4}`),
	},
	{
		Type:          entities.SectionProductCategories,
		Name:          "Product Categories",
		Icon:          "grid",
		Category:      "products",
		DefaultConfig: json.RawMessage(`{"title":"Browse by Category"}`),
	},
	{
		Type:          entities.SectionAllProducts,
		Name:          "All Products",
		Icon:          "package",
		Category:      "products",
		DefaultConfig: json.RawMessage(`{"title":"All Products","showCategoryFilter":true}`),
	},
	{
		Type:          entities.SectionAboutMe,
		Name:          "About the Maker",
		Icon:          "user",
		Category:      "story",
		Singleton:     true,
		DefaultConfig: json.RawMessage(`{"title":"About Me"}`),
	},
	{
		Type:          entities.SectionReviews,
		Name:          "Customer Reviews",
		Icon:          "message-circle",
		Category:      "social",
		DefaultConfig: json.RawMessage(`{"title":"What Customers Say","items":[]}`),
	},
	{
		Type:          entities.SectionPickupDetails,
		Name:          "Pickup Details",
		Icon:          "map-pin",
		Category:      "info",
		Singleton:     true,
		DefaultConfig: json.RawMessage(`{"title":"Pickup","showMap":false}`),
	},
	{
		Type:          entities.SectionShopHours,
		Name:          "Opening Hours",
		Icon:          "clock",
		Category:      "info",
		Singleton:     true,
		DefaultConfig: json.RawMessage(`{"title":"Hours"}`),
	},
	{
		Type:          entities.SectionFAQ,
		Name:          "FAQ",
		Icon:          "help-circle",
		Category:      "info",
		DefaultConfig: json.RawMessage(`{"items":[]}`),
	},
	{
		Type:          entities.SectionInstagramFeed,
		Name:          "Instagram Feed",
		Icon:          "instagram",
		Category:      "social",
		DefaultConfig: json.RawMessage(`{"handle":"","limit":6}`),
	},
	{
		Type:          entities.SectionNewsletterSignup,
		Name:          "Newsletter Signup",
		Icon:          "mail",
		Category:      "social",
		DefaultConfig: json.RawMessage(`{"title":"Stay in the loop","buttonLabel":"Subscribe"}`),
	},
	{
		Type:          entities.SectionCustomText,
		Name:          "Custom Text",
		Icon:          "type",
		Category:      "layout",
		DefaultConfig: json.RawMessage(`{"alignment":"left"}`),
	},
	{
		Type:          entities.SectionDivider,
		Name:          "Divider",
		Icon:          "minus",
		Category:      "layout",
		DefaultConfig: json.RawMessage(`{"style":"solid"}`),
	},
	{
		Type:          entities.SectionSpacer,
		Name:          "Spacer",
		Icon:          "move-vertical",
		Category:      "layout",
		DefaultConfig: json.RawMessage(`{"height":32}`),
	},
}

// GetSectionDefinition looks up one catalog entry by type
func GetSectionDefinition(sectionType entities.SectionType) (*entities.SectionDefinition, bool) {
	for i := range sectionCatalog {
		if sectionCatalog[i].Type == sectionType {
			return &sectionCatalog[i], true
		}
	}
	return nil, false
}

// ListSectionDefinitions returns the full catalog for the builder menu
func ListSectionDefinitions() []entities.SectionDefinition {
	out := make([]entities.SectionDefinition, len(sectionCatalog))
	copy(out, sectionCatalog)
	return out
}
