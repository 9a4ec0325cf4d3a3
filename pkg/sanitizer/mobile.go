package sanitizer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MobileContext tells NormalizeMobile which export a value came from. The
// CRM export stores numbers with a 91 country prefix and occasional trailing
// junk, so only its values get the prefix strip and ten digit cut.
type MobileContext int

const (
	LeadMobile MobileContext = iota
	OrderMobile
)

var reNonDigit = regexp.MustCompile(`\D`)

// NormalizeMobile reduces a raw spreadsheet cell to the digit-only join key.
// An empty result means no usable number.
func NormalizeMobile(raw string, ctx MobileContext) string {
	s := digitString(raw)
	if ctx == LeadMobile {
		s = stripCountryPrefix(s)
	}
	return strings.TrimLeft(s, "0")
}

// NormalizeSearchMobile normalizes a user-typed number for index lookup.
// Unlike the batch path it always strips the country prefix and cuts to ten
// digits, whichever table the number ends up matching.
func NormalizeSearchMobile(raw string) string {
	return strings.TrimLeft(stripCountryPrefix(digitString(raw)), "0")
}

// digitString renders numeric cells as plain integers, so "9876543210.0" and
// "9.87654321E9" both become "9876543210". Anything that is not a clean
// number keeps only its digit runes.
func digitString(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && isPlainNumber(trimmed, f) {
		return strconv.FormatInt(int64(f), 10)
	}

	return reNonDigit.ReplaceAllString(trimmed, "")
}

// isPlainNumber rejects parses the digit-strip fallback should handle
// instead: NaN, infinities, hex float syntax, and magnitudes past int64.
func isPlainNumber(s string, f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	if strings.ContainsAny(s, "xX") {
		return false
	}
	return f > -float64(1<<63) && f < float64(1<<63)
}

func stripCountryPrefix(s string) string {
	if strings.HasPrefix(s, "91") && len(s) >= 12 {
		s = s[2:]
	}
	if len(s) > 10 {
		s = s[:10]
	}
	return s
}
