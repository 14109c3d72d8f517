package usecases

import "time"

// Theme fallback literals. Tier 3 of the resolver: used when neither
// the active token bundle nor the shop column carries a value.
const (
	DefaultPrimaryColor    = "#2563eb"
	DefaultSecondaryColor  = "#f59e0b"
	DefaultAccentColor     = "#10b981"
	DefaultBackgroundColor = "#ffffff"
	DefaultTextColor       = "#1f2937"
	DefaultHeadingColor    = "#111827"

	DefaultHeadingFont = "Inter"
	DefaultBodyFont    = "Inter"
	DefaultCardStyle   = "rounded"

	DefaultNavBackground = "#ffffff"
	DefaultNavText       = "#1f2937"

	DefaultHeroStyle  = "image"
	DefaultHeroHeight = "medium"

	DefaultBackgroundOpacity = 1.0
)

// Storefront page cache keys
const (
	storefrontCachePrefix = "storefront:page:"
	StorefrontCacheTTL    = 45 * time.Second
)

func storefrontCacheKey(slug string) string {
	return storefrontCachePrefix + slug
}
