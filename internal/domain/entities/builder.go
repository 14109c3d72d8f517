package entities

import (
	"github.com/google/uuid"
)

// HeroSettings is the builder's hero configuration block
type HeroSettings struct {
	Style       string `json:"style,omitempty"`
	Height      string `json:"height,omitempty"`
	MediaURL    string `json:"mediaUrl,omitempty"`
	ShowTagline bool   `json:"showTagline"`
	ShowCTA     bool   `json:"showCTA"`
}

// BuilderOverview carries the shop's identity and operational fields
type BuilderOverview struct {
	Name               string `json:"name" binding:"required,min=1,max=120"`
	Tagline            string `json:"tagline,omitempty"`
	Description        string `json:"description,omitempty"`
	IsPublic           bool   `json:"isPublic"`
	AcceptingOrders    bool   `json:"acceptingOrders"`
	City               string `json:"city,omitempty"`
	Region             string `json:"region,omitempty"`
	PickupInstructions string `json:"pickupInstructions,omitempty"`
}

// BuilderDesign carries the branding values the owner picked
type BuilderDesign struct {
	Colors      map[string]string `json:"colors,omitempty"`
	HeadingFont string            `json:"headingFont,omitempty"`
	BodyFont    string            `json:"bodyFont,omitempty"`
	CardStyle   string            `json:"cardStyle,omitempty"`
	Hero        *HeroSettings     `json:"hero,omitempty"`
}

// BuilderWebSurface carries web-surface background overrides
type BuilderWebSurface struct {
	NavBackgroundColor string   `json:"navBackgroundColor,omitempty"`
	NavTextColor       string   `json:"navTextColor,omitempty"`
	BackgroundPattern  string   `json:"backgroundPattern,omitempty"`
	BackgroundGradient string   `json:"backgroundGradient,omitempty"`
	BackgroundImageURL string   `json:"backgroundImageUrl,omitempty"`
	BackgroundOpacity  *float64 `json:"backgroundOpacity,omitempty"`
}

// BuilderAppSurface carries mobile-surface overrides
type BuilderAppSurface struct {
	CardStyle  string            `json:"cardStyle,omitempty"`
	IconTheme  string            `json:"iconTheme,omitempty"`
	Background *BackgroundTokens `json:"background,omitempty"`
}

// BuilderPayload is the full builder draft submitted on every save.
// The payload is the source of truth: fields absent from it are written
// as null, never preserved from the previous save.
type BuilderPayload struct {
	ShopID   *uuid.UUID         `json:"id,omitempty"`
	Overview BuilderOverview    `json:"overview" binding:"required"`
	Design   BuilderDesign      `json:"design"`
	Sections []Section          `json:"sections"`
	Web      *BuilderWebSurface `json:"web,omitempty"`
	App      *BuilderAppSurface `json:"app,omitempty"`
}

// SaveResult is returned by the builder save pipeline
type SaveResult struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
}

// BuilderState is the owner's current draft, returned to the builder UI
type BuilderState struct {
	Shop     *Shop        `json:"shop"`
	Tokens   *TokenBundle `json:"tokens,omitempty"`
	Sections []Section    `json:"sections"`
}
