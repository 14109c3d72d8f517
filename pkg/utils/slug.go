package utils

import (
	"strings"
	"unicode"
)

// Slugify derives a URL slug from a display name: lowercase, strip
// non-alphanumerics, collapse runs of separators to single hyphens,
// and truncate to maxLen without leaving a trailing hyphen.
func Slugify(name string, maxLen int) string {
	var b strings.Builder
	prevHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if r > unicode.MaxASCII {
				continue
			}
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if maxLen > 0 && len(slug) > maxLen {
		slug = strings.Trim(slug[:maxLen], "-")
	}
	return slug
}
