package replaygain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errNotDecimal = errors.New("not a decimal number")

func stripLeadingSign(trimmed string, sign byte) string {
	if trimmed != "" && trimmed[0] == sign {
		return strings.TrimSpace(trimmed[1:])
	}

	return trimmed
}

// normalizeNumberString trims number and drops an explicit '+' sign.
// A second sign after a stripped '+' fails, returning number unchanged.
func normalizeNumberString(number string) (string, bool) {
	trimmed := strings.TrimSpace(number)

	normalized := stripLeadingSign(trimmed, '+')
	if normalized == trimmed {
		return normalized, true
	}

	if normalized == stripLeadingSign(normalized, '+') && normalized == stripLeadingSign(normalized, '-') {
		return normalized, true
	}

	return number, false
}

// stripGainUnit removes a trailing " dB" suffix, matching the label case-insensitively.
func stripGainUnit(gain string) string {
	if len(gain) < len(gainSuffix) {
		return gain
	}

	cut := len(gain) - len(gainSuffix)
	if !strings.EqualFold(gain[cut:], gainSuffix) {
		return gain
	}

	return strings.TrimSpace(gain[:cut])
}

// parseDecimal accepts plain decimal notation only: no hex floats, digit separators, inf or nan.
func parseDecimal(number string) (float64, error) {
	if strings.IndexFunc(number, isNotDecimal) >= 0 {
		return 0, fmt.Errorf("%w: %q", errNotDecimal, number)
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errNotDecimal, err)
	}

	return value, nil
}

func isNotDecimal(r rune) bool {
	switch {
	case '0' <= r && r <= '9':
		return false
	case r == '.', r == '+', r == '-', r == 'e', r == 'E':
		return false
	}

	return true
}
