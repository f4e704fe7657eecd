package normalize

import (
	"regexp"
	"strings"

	"eventbooker/internal/domain"
)

// emailRegex is a conservative address check: one non-empty local part with
// no whitespace, angle brackets or extra @, then a domain containing at
// least one dot. Stricter than RFC 5322 on purpose.
var emailRegex = regexp.MustCompile(`^[^\s@<>]+@[^\s@<>]+\.[^\s@<>]+$`)

// Email validates an address and returns its canonical stored form: trimmed
// and lowercased across the whole address. Folding the local part too is a
// product decision matching common provider behavior, not email-spec truth.
func Email(input string) (string, error) {
	s := strings.TrimSpace(input)
	if !emailRegex.MatchString(s) || strings.Contains(s, "..") {
		return "", domain.NewFieldError("email", domain.ErrInvalidEmail, input)
	}
	return strings.ToLower(s), nil
}
