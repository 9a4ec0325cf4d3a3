package sanitizer

import (
	"math"
	"strconv"
	"strings"
)

// ParseOrderValue coerces an order amount cell to a float. Values that fail a
// straight numeric parse get one retry with the rupee symbol and surrounding
// whitespace removed ("₹1250.50"). Everything else, including NaN markers
// from the exporting tool, counts as zero.
func ParseOrderValue(raw string) float64 {
	if f, ok := parseFinite(raw); ok {
		return f
	}

	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, "₹", ""))
	if f, ok := parseFinite(cleaned); ok {
		return f
	}

	return 0
}

// ParseCoordinate coerces a latitude or longitude cell, defaulting to zero
// for blanks and junk.
func ParseCoordinate(raw string) float64 {
	if f, ok := parseFinite(raw); ok {
		return f
	}
	return 0
}

func parseFinite(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
