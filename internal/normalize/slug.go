// Package normalize holds the pure input transforms applied before any
// record is persisted: slug derivation, date and time canonicalization, and
// email validation. Every function is deterministic and store-independent.
package normalize

import (
	"strings"
	"unicode"

	"eventbooker/internal/domain"
)

// Slug derives a URL-safe slug from a title: trimmed, lowercased, every rune
// outside [letter digit space hyphen] stripped, whitespace runs collapsed to
// a single hyphen, hyphen runs collapsed, edge hyphens removed. The result
// is a fixed point: Slug(Slug(x)) == Slug(x).
func Slug(title string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('-')
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return "", domain.NewFieldError("title", domain.ErrInvalidInput, "title produces an empty slug")
	}
	return slug, nil
}
