package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Shop represents one maker's storefront; the tenant unit of the
// marketplace. Branding columns are nullable so the theme resolver can
// distinguish "owner picked a value" from "fall through to defaults".
type Shop struct {
	ID          uuid.UUID   `json:"id"`
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Tagline     null.String `json:"tagline,omitempty"`
	Description null.String `json:"description,omitempty"`

	PrimaryColor    null.String `json:"primaryColor,omitempty"`
	SecondaryColor  null.String `json:"secondaryColor,omitempty"`
	AccentColor     null.String `json:"accentColor,omitempty"`
	BackgroundColor null.String `json:"backgroundColor,omitempty"`
	TextColor       null.String `json:"textColor,omitempty"`
	HeadingColor    null.String `json:"headingColor,omitempty"`
	HeadingFont     null.String `json:"headingFont,omitempty"`
	BodyFont        null.String `json:"bodyFont,omitempty"`

	NavBackgroundColor null.String  `json:"navBackgroundColor,omitempty"`
	NavTextColor       null.String  `json:"navTextColor,omitempty"`
	HeroStyle          null.String  `json:"heroStyle,omitempty"`
	HeroHeight         null.String  `json:"heroHeight,omitempty"`
	HeroMediaURL       null.String  `json:"heroMediaUrl,omitempty"`
	BackgroundPattern  null.String  `json:"backgroundPattern,omitempty"`
	BackgroundGradient null.String  `json:"backgroundGradient,omitempty"`
	BackgroundImageURL null.String  `json:"backgroundImageUrl,omitempty"`
	BackgroundOpacity  null.Float64 `json:"backgroundOpacity,omitempty"`

	AppBackgroundPattern  null.String  `json:"appBackgroundPattern,omitempty"`
	AppBackgroundGradient null.String  `json:"appBackgroundGradient,omitempty"`
	AppBackgroundImageURL null.String  `json:"appBackgroundImageUrl,omitempty"`
	AppBackgroundOpacity  null.Float64 `json:"appBackgroundOpacity,omitempty"`

	IsPublic        bool `json:"isPublic"`
	AcceptingOrders bool `json:"acceptingOrders"`

	City               null.String `json:"city,omitempty"`
	Region             null.String `json:"region,omitempty"`
	PickupInstructions null.String `json:"pickupInstructions,omitempty"`

	CreatedBy uuid.UUID `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt null.Time `json:"-"`
}

// ShopSummary is the slim shop representation returned by the save
// pipeline and embedded in composed storefront pages
type ShopSummary struct {
	ID              uuid.UUID   `json:"id"`
	Slug            string      `json:"slug"`
	Name            string      `json:"name"`
	Tagline         null.String `json:"tagline,omitempty"`
	Description     null.String `json:"description,omitempty"`
	City            null.String `json:"city,omitempty"`
	Region          null.String `json:"region,omitempty"`
	AcceptingOrders bool        `json:"acceptingOrders"`
}

// Summary converts a shop to its slim representation
func (s *Shop) Summary() ShopSummary {
	return ShopSummary{
		ID:              s.ID,
		Slug:            s.Slug,
		Name:            s.Name,
		Tagline:         s.Tagline,
		Description:     s.Description,
		City:            s.City,
		Region:          s.Region,
		AcceptingOrders: s.AcceptingOrders,
	}
}
