package entities

import (
	"time"

	"github.com/google/uuid"
)

// FontFamily holds the heading/body font pair inside a token bundle
type FontFamily struct {
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body,omitempty"`
}

// Typography holds typography tokens
type Typography struct {
	FontFamily FontFamily `json:"fontFamily"`
}

// BackgroundTokens describes one surface's background treatment
type BackgroundTokens struct {
	Pattern  string   `json:"pattern,omitempty"`
	Gradient string   `json:"gradient,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Opacity  *float64 `json:"opacity,omitempty"`
}

// AppTokens is the mobile-surface sub-object of a token bundle
type AppTokens struct {
	CardStyle  string            `json:"cardStyle,omitempty"`
	IconTheme  string            `json:"iconTheme,omitempty"`
	Background *BackgroundTokens `json:"background,omitempty"`
}

// TokenBundle is the JSON blob persisted per shop: color and typography
// maps, the ordered section list, and the mobile sub-object. Every field
// is optional; the theme resolver falls through to shop columns and then
// to hard defaults for anything missing.
type TokenBundle struct {
	Colors     map[string]string `json:"colors,omitempty"`
	Typography *Typography       `json:"typography,omitempty"`
	CardStyle  string            `json:"cardStyle,omitempty"`
	Sections   []Section         `json:"sections"`
	App        *AppTokens        `json:"app,omitempty"`
}

// ShopDesignTokens is one persisted token row. At most one row per shop
// is active at a time; older rows are retained as history until pruned.
type ShopDesignTokens struct {
	ID        uuid.UUID   `json:"id"`
	ShopID    uuid.UUID   `json:"shopId"`
	Tokens    TokenBundle `json:"tokens"`
	IsActive  bool        `json:"isActive"`
	CreatedBy uuid.UUID   `json:"createdBy"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Theme is the flat, fully-resolved visual contract consumed by every
// rendering surface. Every field is concrete; no consumer needs to know
// which tier a value came from.
type Theme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Heading    string `json:"heading"`

	HeadingFont string `json:"headingFont"`
	BodyFont    string `json:"bodyFont"`
	CardStyle   string `json:"cardStyle"`

	NavBackground string `json:"navBackground"`
	NavText       string `json:"navText"`

	HeroStyle    string `json:"heroStyle"`
	HeroHeight   string `json:"heroHeight"`
	HeroMediaURL string `json:"heroMediaUrl,omitempty"`

	BackgroundPattern  string  `json:"backgroundPattern,omitempty"`
	BackgroundGradient string  `json:"backgroundGradient,omitempty"`
	BackgroundImageURL string  `json:"backgroundImageUrl,omitempty"`
	BackgroundOpacity  float64 `json:"backgroundOpacity"`
}
