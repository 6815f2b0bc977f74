package pkg

import (
	"strconv"
	"strings"

	"github.com/payflowhq/payflow/internal/domain"
)

// ParseAmount converts a display-formatted amount ("12,345.00") into its raw
// numeric value. Thousands separators must group digits in threes ("1,2,3" is
// rejected, not read as 123); the empty string, a non-numeric value, or a
// negative value is a validation error. Backends only ever see the raw value.
func ParseAmount(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, domain.NewAppError(domain.CodeValidation, "amount is required", nil)
	}
	if !validGrouping(trimmed) {
		return 0, domain.NewAppError(domain.CodeValidation, "amount has misplaced thousands separators", nil)
	}

	cleaned := strings.ReplaceAll(trimmed, ",", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, domain.NewAppError(domain.CodeValidation, "amount must be a number", err)
	}
	if v < 0 {
		return 0, domain.NewAppError(domain.CodeValidation, "amount must not be negative", nil)
	}
	return v, nil
}

// validGrouping reports whether any commas in s sit at legal thousands
// positions: none in the fractional part, a leading group of one to three
// digits, and exactly three digits in every group after it.
func validGrouping(s string) bool {
	intPart := s
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		if strings.Contains(s[dot:], ",") {
			return false
		}
	}
	intPart = strings.TrimPrefix(intPart, "-")
	if !strings.Contains(intPart, ",") {
		return true
	}

	groups := strings.Split(intPart, ",")
	if len(groups[0]) < 1 || len(groups[0]) > 3 {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return false
		}
	}
	return true
}

// FormatAmount renders a raw numeric value with thousands separators and two
// decimal places: 12345 -> "12,345.00". With omitDecimals the value is rounded
// to a whole number first: 12345.6 -> "12,346".
func FormatAmount(v float64, omitDecimals bool) string {
	var formatted string
	if omitDecimals {
		formatted = strconv.FormatFloat(v, 'f', 0, 64)
	} else {
		formatted = strconv.FormatFloat(v, 'f', 2, 64)
	}

	neg := strings.HasPrefix(formatted, "-")
	if neg {
		formatted = formatted[1:]
	}

	intPart := formatted
	var fracPart string
	if dot := strings.IndexByte(formatted, '.'); dot >= 0 {
		intPart, fracPart = formatted[:dot], formatted[dot:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteString(fracPart)
	return b.String()
}
