// Package human provides types that support parsing and formatting
// human-friendly representations of values used in httpcraft configuration and
// logs: file system paths, durations and byte sizes.
package human

import (
	"fmt"
	"strings"
)

// ftoa formats value/scale with a precision that decreases as the magnitude
// grows, trimming trailing zeros.
func ftoa(value, scale float64) string {
	if value == 0 {
		return "0"
	}
	if value < 0 {
		return "-" + ftoa(-value, scale)
	}

	var format string
	switch {
	case (value / scale) >= 100:
		format = "%.0f"
	case (value / scale) >= 10:
		format = "%.1f"
	default:
		format = "%.2f"
	}

	s := fmt.Sprintf(format, value/scale)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
