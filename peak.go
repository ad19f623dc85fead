package replaygain

// ParsePeak parses a peak string. Rejections are logged at debug level.
func (c *Codec) ParsePeak(text string) (float64, bool) {
	normalized, valid := normalizeNumberString(text)
	if !valid {
		c.log().Debug("replaygain.ParsePeak", "input", text, "stage", "sign")

		return PeakUndefined, false
	}

	if normalized == "" {
		return PeakUndefined, false
	}

	peak, err := parseDecimal(normalized)
	if err != nil {
		c.log().Debug("replaygain.ParsePeak", "input", text, "stage", "parse", "error", err)

		return PeakUndefined, false
	}

	if !IsValidPeak(peak) {
		c.log().Debug("replaygain.ParsePeak", "input", text, "stage", "range", "peak", peak)

		return PeakUndefined, false
	}

	return unsignedZero(peak), true
}

// FormatPeak formats a peak such as 0.988553. Invalid peaks format as "".
func FormatPeak(peak float64) string {
	if !IsValidPeak(peak) {
		return ""
	}

	return formatNumber(unsignedZero(peak))
}

// unsignedZero maps -0 to +0 so that silence never prints as "-0".
func unsignedZero(peak float64) float64 {
	if peak == 0 {
		return PeakMin
	}

	return peak
}

// NormalizePeak rounds peak to what its string represents.
func (c *Codec) NormalizePeak(peak float64) float64 {
	if !IsValidPeak(peak) {
		return PeakUndefined
	}

	normalized, _ := c.ParsePeak(FormatPeak(peak))

	return normalized
}
