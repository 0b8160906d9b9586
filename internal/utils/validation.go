package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ValidatePattern validates station name search patterns. Wildcards % and _
// are allowed; they are bound as LIKE parameters, never spliced into SQL.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return errors.New("pattern cannot be empty")
	}

	if len(pattern) > 200 {
		return errors.New("pattern too long (max 200 characters)")
	}

	return nil
}

// ValidateDirection validates a stop direction token (N/S/E/W or a compound
// like NE). Matching downstream is case-insensitive.
func ValidateDirection(direction string) error {
	if direction == "" {
		return errors.New("direction cannot be empty")
	}

	if len(direction) > 2 {
		return errors.New("direction too long")
	}

	for _, r := range strings.ToUpper(direction) {
		switch r {
		case 'N', 'S', 'E', 'W':
		default:
			return errors.New("direction must use N, S, E, or W")
		}
	}

	return nil
}

// ParseCoordinate parses a latitude or longitude string into a float.
func ParseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New("coordinate is not a number")
	}
	return v, nil
}

// IsYear reports whether s is a plausible 4-digit calendar year. An invalid
// year is not an input error for the series commands; it just selects no
// rows. This exists so callers can log suspicious input.
func IsYear(s string) bool {
	_, err := time.Parse("2006", s)
	return err == nil && len(s) == 4
}
