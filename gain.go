package replaygain

import (
	"github.com/farcloser/replaygain/internal/decibel"
)

// ParseGain2Ratio parses a gain string into a linear ratio. Rejections are logged at debug level.
func (c *Codec) ParseGain2Ratio(text string) (float64, bool) {
	normalized, valid := normalizeNumberString(text)
	if !valid {
		c.log().Debug("replaygain.ParseGain2Ratio", "input", text, "stage", "sign")

		return RatioUndefined, false
	}

	normalized = stripGainUnit(normalized)
	if normalized == "" {
		return RatioUndefined, false
	}

	db, err := parseDecimal(normalized)
	if err != nil {
		c.log().Debug("replaygain.ParseGain2Ratio", "input", text, "stage", "parse", "error", err)

		return RatioUndefined, false
	}

	ratio := decibel.ToRatio(db)
	if !IsValidRatio(ratio) {
		c.log().Debug("replaygain.ParseGain2Ratio", "input", text, "stage", "range", "ratio", ratio)

		return RatioUndefined, false
	}

	return ratio, true
}

// FormatRatio2Gain formats a ratio as a gain string such as "-6.5 dB".
// Invalid ratios format as "".
func FormatRatio2Gain(ratio float64) string {
	if !IsValidRatio(ratio) {
		return ""
	}

	return formatNumber(decibel.FromRatio(ratio)) + gainSuffix
}

// NormalizeRatio rounds ratio to what its gain string represents.
// Applying it twice gives the same result as applying it once.
func (c *Codec) NormalizeRatio(ratio float64) float64 {
	if !IsValidRatio(ratio) {
		return RatioUndefined
	}

	normalized, _ := c.ParseGain2Ratio(FormatRatio2Gain(ratio))

	return normalized
}
