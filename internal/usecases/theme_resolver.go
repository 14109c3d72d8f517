package usecases

import (
	"github.com/volatiletech/null/v8"
	"makershop.backend/internal/domain/entities"
)

// ResolveTheme flattens the three configuration tiers into one concrete
// Theme. Resolution is per field, highest priority first: active token
// bundle value, then shop column, then literal fallback. A nil or empty
// tokens row is not an error; every field falls through independently.
func ResolveTheme(shop *entities.Shop, tokensRow *entities.ShopDesignTokens) entities.Theme {
	var bundle *entities.TokenBundle
	if tokensRow != nil {
		bundle = &tokensRow.Tokens
	}

	theme := entities.Theme{
		Primary:    resolveColor(bundle, "primary", shop.PrimaryColor, DefaultPrimaryColor),
		Secondary:  resolveColor(bundle, "secondary", shop.SecondaryColor, DefaultSecondaryColor),
		Accent:     resolveColor(bundle, "accent", shop.AccentColor, DefaultAccentColor),
		Background: resolveColor(bundle, "background", shop.BackgroundColor, DefaultBackgroundColor),
		Text:       resolveColor(bundle, "text", shop.TextColor, DefaultTextColor),
		Heading:    resolveColor(bundle, "heading", shop.HeadingColor, DefaultHeadingColor),

		HeadingFont: resolveString(tokenHeadingFont(bundle), shop.HeadingFont, DefaultHeadingFont),
		BodyFont:    resolveString(tokenBodyFont(bundle), shop.BodyFont, DefaultBodyFont),
		CardStyle:   resolveString(tokenCardStyle(bundle), null.String{}, DefaultCardStyle),

		NavBackground: resolveColor(bundle, "navBackground", shop.NavBackgroundColor, DefaultNavBackground),
		NavText:       resolveColor(bundle, "navText", shop.NavTextColor, DefaultNavText),

		HeroStyle:  resolveString("", shop.HeroStyle, DefaultHeroStyle),
		HeroHeight: resolveString("", shop.HeroHeight, DefaultHeroHeight),

		HeroMediaURL:       shop.HeroMediaURL.String,
		BackgroundPattern:  shop.BackgroundPattern.String,
		BackgroundGradient: shop.BackgroundGradient.String,
		BackgroundImageURL: shop.BackgroundImageURL.String,

		BackgroundOpacity: DefaultBackgroundOpacity,
	}

	if shop.BackgroundOpacity.Valid {
		theme.BackgroundOpacity = shop.BackgroundOpacity.Float64
	}

	return theme
}

// ResolveAppTokens returns the mobile-surface sub-object, falling back
// from the token bundle to the shop's app-prefixed columns.
func ResolveAppTokens(shop *entities.Shop, tokensRow *entities.ShopDesignTokens) *entities.AppTokens {
	if tokensRow != nil && tokensRow.Tokens.App != nil {
		return tokensRow.Tokens.App
	}

	if !shop.AppBackgroundPattern.Valid && !shop.AppBackgroundGradient.Valid &&
		!shop.AppBackgroundImageURL.Valid && !shop.AppBackgroundOpacity.Valid {
		return nil
	}

	return &entities.AppTokens{
		Background: &entities.BackgroundTokens{
			Pattern:  shop.AppBackgroundPattern.String,
			Gradient: shop.AppBackgroundGradient.String,
			ImageURL: shop.AppBackgroundImageURL.String,
			Opacity:  shop.AppBackgroundOpacity.Ptr(),
		},
	}
}

func resolveColor(bundle *entities.TokenBundle, key string, column null.String, fallback string) string {
	if bundle != nil {
		if v, ok := bundle.Colors[key]; ok && v != "" {
			return v
		}
	}
	if column.Valid && column.String != "" {
		return column.String
	}
	return fallback
}

func resolveString(tokenValue string, column null.String, fallback string) string {
	if tokenValue != "" {
		return tokenValue
	}
	if column.Valid && column.String != "" {
		return column.String
	}
	return fallback
}

func tokenHeadingFont(bundle *entities.TokenBundle) string {
	if bundle == nil || bundle.Typography == nil {
		return ""
	}
	return bundle.Typography.FontFamily.Heading
}

func tokenBodyFont(bundle *entities.TokenBundle) string {
	if bundle == nil || bundle.Typography == nil {
		return ""
	}
	return bundle.Typography.FontFamily.Body
}

func tokenCardStyle(bundle *entities.TokenBundle) string {
	if bundle == nil {
		return ""
	}
	return bundle.CardStyle
}
