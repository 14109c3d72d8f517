package entities

// RenderedSection is one composed output unit of a storefront page.
// Data holds the type-specific view model; its concrete shape follows
// the section's type.
type RenderedSection struct {
	ID   string      `json:"id"`
	Type SectionType `json:"type"`
	Data interface{} `json:"data"`
}

// StorefrontPage is the single composed representation served to the
// public storefront, the dashboard preview, and the mobile surface.
// All three consumers render the same theme and the same ordered
// section list.
type StorefrontPage struct {
	Shop     ShopSummary       `json:"shop"`
	Theme    Theme             `json:"theme"`
	App      *AppTokens        `json:"app,omitempty"`
	Sections []RenderedSection `json:"sections"`
}

// Per-type view models produced by the section renderer.

// HeroView is the rendered hero banner
type HeroView struct {
	Title       string `json:"title"`
	Tagline     string `json:"tagline,omitempty"`
	Height      string `json:"height"`
	Style       string `json:"style"`
	MediaURL    string `json:"mediaUrl,omitempty"`
	ShowCTA     bool   `json:"showCTA"`
	CTALabel    string `json:"ctaLabel,omitempty"`
	ShowTagline bool   `json:"showTagline"`
}

// ProductGridView is the rendered output of featured/all product sections
type ProductGridView struct {
	Title              string     `json:"title,omitempty"`
	Products           []*Product `json:"products"`
	ShowCategoryFilter bool       `json:"showCategoryFilter,omitempty"`
}

// CategoryListView is the rendered category row
type CategoryListView struct {
	Title      string      `json:"title,omitempty"`
	Categories []*Category `json:"categories"`
}

// AboutView is the rendered maker bio
type AboutView struct {
	Title    string `json:"title,omitempty"`
	Body     string `json:"body,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// ReviewsView is the rendered reviews section
type ReviewsView struct {
	Title string       `json:"title,omitempty"`
	Items []ReviewItem `json:"items"`
}

// PickupView is the rendered pickup details
type PickupView struct {
	Title        string `json:"title,omitempty"`
	City         string `json:"city,omitempty"`
	Region       string `json:"region,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	ShowMap      bool   `json:"showMap"`
}

// HoursView is the rendered opening hours table
type HoursView struct {
	Title string       `json:"title,omitempty"`
	Hours []*ShopHours `json:"hours"`
}

// FAQView is the rendered FAQ list
type FAQView struct {
	Items []FAQItem `json:"items"`
}

// InstagramView is the rendered instagram embed placeholder
type InstagramView struct {
	Handle string `json:"handle,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// NewsletterView is the rendered newsletter signup block
type NewsletterView struct {
	Title       string `json:"title,omitempty"`
	ButtonLabel string `json:"buttonLabel,omitempty"`
}

// CustomTextView is the rendered free-form text block
type CustomTextView struct {
	Title     string `json:"title,omitempty"`
	Body      string `json:"body,omitempty"`
	Alignment string `json:"alignment,omitempty"`
}

// DividerView is the rendered divider
type DividerView struct {
	Style string `json:"style,omitempty"`
}

// SpacerView is the rendered spacer
type SpacerView struct {
	Height int `json:"height"`
}
