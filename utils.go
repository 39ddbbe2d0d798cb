package niceplots

import (
	"fmt"
	"regexp"
	"strings"
)

var hexPattern = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// NormalizeHex canonicalizes a colour value to the 6-digit upper-case
// "#RRGGBB" form, expanding 3-digit shorthand.
func NormalizeHex(value string) (string, error) {
	value = strings.TrimSpace(value)

	if !strings.HasPrefix(value, `#`) {
		value = `#` + value
	}

	if !hexPattern.MatchString(value) {
		return ``, fmt.Errorf("%w: %q is not a hex colour", ErrInvalidConfiguration, value)
	}

	digits := strings.ToUpper(value[1:])

	if len(digits) == 3 {
		expanded := make([]byte, 0, 6)

		for i := 0; i < 3; i++ {
			expanded = append(expanded, digits[i], digits[i])
		}

		digits = string(expanded)
	}

	return `#` + digits, nil
}

// SampleSeries returns small deterministic demo data for theme previews.
func SampleSeries(chartType ChartType) []Series {
	switch chartType {
	case Scatter:
		return []Series{
			{
				Name: `observed`,
				X:    []float64{1, 2, 3, 4, 5, 6, 7, 8},
				Y:    []float64{2.5, 4, 3, 6.5, 5, 8, 7.5, 9},
			},
		}
	case HorizontalBar, VerticalBar:
		return []Series{
			{
				Name: `count`,
				X:    []float64{1, 2, 3, 4, 5},
				Y:    []float64{12, 9, 17, 4, 11},
			},
		}
	default:
		return []Series{
			{
				Name: `first`,
				X:    []float64{1, 2, 3, 4, 5, 6},
				Y:    []float64{3, 5, 4, 7, 6, 9},
			},
			{
				Name: `second`,
				X:    []float64{1, 2, 3, 4, 5, 6},
				Y:    []float64{2, 3, 5, 4, 8, 7},
			},
		}
	}
}
