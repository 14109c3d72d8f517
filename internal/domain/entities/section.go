package entities

import (
	"encoding/json"
)

// SectionType identifies one kind of storefront section
type SectionType string

const (
	SectionHero              SectionType = "hero"
	SectionFeaturedProducts  SectionType = "featured_products"
	SectionProductCategories SectionType = "product_categories"
	SectionAllProducts       SectionType = "all_products"
	SectionAboutMe           SectionType = "about_me"
	SectionReviews           SectionType = "reviews"
	SectionPickupDetails     SectionType = "pickup_details"
	SectionShopHours         SectionType = "shop_hours"
	SectionFAQ               SectionType = "faq"
	SectionInstagramFeed     SectionType = "instagram_feed"
	SectionNewsletterSignup  SectionType = "newsletter_signup"
	SectionCustomText        SectionType = "custom_text"
	SectionDivider           SectionType = "divider"
	SectionSpacer            SectionType = "spacer"
)

// Section is one configurable, orderable block of a storefront page.
// Config is stored as the raw JSON the builder submitted; its shape
// depends on SectionType and is decoded per type at render time.
type Section struct {
	ID          string          `json:"id"`
	SectionType SectionType     `json:"sectionType"`
	Config      json.RawMessage `json:"config"`
	IsVisible   bool            `json:"isVisible"`
}

// SectionDefinition is a catalog entry describing one section type for
// the builder UI: display metadata plus the default config a newly
// added section starts with. The Singleton flag is an authoring hint
// only; the renderer does not enforce it.
type SectionDefinition struct {
	Type          SectionType     `json:"type"`
	Name          string          `json:"name"`
	Icon          string          `json:"icon"`
	Category      string          `json:"category"`
	Singleton     bool            `json:"singleton"`
	DefaultConfig json.RawMessage `json:"defaultConfig"`
}

// Per-type config payloads. The renderer decodes Section.Config into
// one of these based on SectionType; fields missing from the stored
// JSON keep their zero values.

// HeroConfig configures the hero banner section
type HeroConfig struct {
	Height      string `json:"height,omitempty"`
	ShowTagline bool   `json:"showTagline"`
	ShowCTA     bool   `json:"showCTA"`
	CTALabel    string `json:"ctaLabel,omitempty"`
}

// FeaturedProductsConfig configures the featured products grid
type FeaturedProductsConfig struct {
	Title string `json:"title,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

// ProductCategoriesConfig configures the category chip row
type ProductCategoriesConfig struct {
	Title string `json:"title,omitempty"`
}

// AllProductsConfig configures the full product grid
type AllProductsConfig struct {
	Title              string `json:"title,omitempty"`
	ShowCategoryFilter bool   `json:"showCategoryFilter"`
}

// AboutMeConfig configures the maker bio section
type AboutMeConfig struct {
	Title    string `json:"title,omitempty"`
	Body     string `json:"body,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// ReviewItem is one customer quote inside a reviews section
type ReviewItem struct {
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// ReviewsConfig configures the reviews section
type ReviewsConfig struct {
	Title string       `json:"title,omitempty"`
	Items []ReviewItem `json:"items,omitempty"`
}

// PickupDetailsConfig configures the pickup/location section
type PickupDetailsConfig struct {
	Title   string `json:"title,omitempty"`
	ShowMap bool   `json:"showMap"`
}

// ShopHoursConfig configures the opening hours section
type ShopHoursConfig struct {
	Title string `json:"title,omitempty"`
}

// FAQItem is one question/answer pair
type FAQItem struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// FAQConfig configures the FAQ section
type FAQConfig struct {
	Items []FAQItem `json:"items,omitempty"`
}

// InstagramFeedConfig configures the instagram embed section
type InstagramFeedConfig struct {
	Handle string `json:"handle,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// NewsletterSignupConfig configures the newsletter capture section
type NewsletterSignupConfig struct {
	Title       string `json:"title,omitempty"`
	ButtonLabel string `json:"buttonLabel,omitempty"`
}

// CustomTextConfig configures a free-form rich text block
type CustomTextConfig struct {
	Title     string `json:"title,omitempty"`
	Body      string `json:"body,omitempty"`
	Alignment string `json:"alignment,omitempty"`
}

// DividerConfig configures a horizontal divider
type DividerConfig struct {
	Style string `json:"style,omitempty"`
}

// SpacerConfig configures vertical whitespace
type SpacerConfig struct {
	Height int `json:"height,omitempty"`
}
