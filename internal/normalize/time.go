package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"eventbooker/internal/domain"
)

// timeRegex matches H:MM / HH:MM with an optional case-insensitive meridiem
// marker, separated by optional spaces. Multi-colon strings do not match.
var timeRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])?$`)

// Time canonicalizes a clock time to 24-hour "HH:MM". With a meridiem
// marker the hour must be 1-12 (12 AM maps to 00, PM adds 12 except for
// 12 PM); without one the hour must be 0-23. Minutes are always 0-59.
// A string that does not match any recognized pattern fails with
// ErrInvalidTimeFormat; a matching string with a component out of range
// fails with ErrInvalidTimeValue.
func Time(input string) (string, error) {
	s := strings.TrimSpace(input)
	m := timeRegex.FindStringSubmatch(s)
	if m == nil {
		return "", domain.NewFieldError("time", domain.ErrInvalidTimeFormat, input)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	meridiem := strings.ToUpper(m[3])

	if minute > 59 {
		return "", domain.NewFieldError("time", domain.ErrInvalidTimeValue, fmt.Sprintf("minute %d", minute))
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return "", domain.NewFieldError("time", domain.ErrInvalidTimeValue, fmt.Sprintf("hour %d", hour))
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return "", domain.NewFieldError("time", domain.ErrInvalidTimeValue, fmt.Sprintf("hour %d", hour))
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return "", domain.NewFieldError("time", domain.ErrInvalidTimeValue, fmt.Sprintf("hour %d", hour))
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
