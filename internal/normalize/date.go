package normalize

import (
	"strings"

	"github.com/araddon/dateparse"

	"eventbooker/internal/domain"
)

// canonicalDateLayout is the stored form of every event date.
const canonicalDateLayout = "2006-01-02"

// Date parses a loosely-formatted date string (ISO with or without a time
// and zone suffix, "Month D, YYYY", "MM/DD/YYYY", ...) and truncates it to
// the calendar date as expressed in the input's own zone.
func Date(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", domain.NewFieldError("date", domain.ErrInvalidDate, "empty date")
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return "", domain.NewFieldError("date", domain.ErrInvalidDate, input)
	}
	return t.Format(canonicalDateLayout), nil
}
