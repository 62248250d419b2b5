package cms

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify converts a title to a URL friendly slug. Accented characters
// are decomposed and stripped, everything outside [a-z0-9] collapses to
// single hyphens.
func Slugify(text string) string {
	text = norm.NFKD.String(text)

	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r), r == '-', r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// UniqueSlug derives a slug from title that does not collide with any of
// the existing slugs, appending a numeric suffix when needed.
func UniqueSlug(title string, existing []string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = 100
	}

	slug := Slugify(title)
	if len(slug) > maxLength {
		slug = strings.TrimSuffix(slug[:maxLength], "-")
	}

	taken := make(map[string]bool, len(existing))
	for _, s := range existing {
		taken[s] = true
	}

	if !taken[slug] {
		return slug
	}

	base := slug
	for counter := 1; ; counter++ {
		suffix := fmt.Sprintf("-%d", counter)
		trimmed := base
		if len(trimmed)+len(suffix) > maxLength {
			trimmed = trimmed[:maxLength-len(suffix)]
		}
		slug = trimmed + suffix
		if !taken[slug] {
			return slug
		}
	}
}
