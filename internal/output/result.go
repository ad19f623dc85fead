// Package output provides shared result serialization for replaygain output.
package output

import (
	"github.com/farcloser/replaygain"
	"github.com/farcloser/replaygain/internal/decibel"
)

// GainToMap converts a parsed gain into the map structure used for console and JSON output.
// Non-finite numbers are left out, as JSON cannot carry them.
func GainToMap(ratio float64, valid bool) map[string]any {
	meta := map[string]any{
		"valid": valid,
		"ratio": ratio,
	}

	if !valid {
		return meta
	}

	normalized := replaygain.NormalizeRatio(ratio)

	meta["gain"] = replaygain.FormatRatio2Gain(normalized)
	meta["normalized_ratio"] = normalized

	if replaygain.IsValidRatio(normalized) {
		meta["gain_db"] = decibel.FromRatio(normalized)
	}

	return meta
}

// PeakToMap converts a parsed peak into the map structure used for console and JSON output.
func PeakToMap(peak float64, valid bool) map[string]any {
	meta := map[string]any{
		"valid": valid,
		"peak":  peak,
	}

	if !valid {
		return meta
	}

	normalized := replaygain.NormalizePeak(peak)

	meta["normalized"] = replaygain.FormatPeak(normalized)
	meta["normalized_peak"] = normalized

	if normalized > 0 {
		meta["peak_db"] = decibel.FromRatio(normalized)
	}

	return meta
}

// ReplayGainToMap converts a gain/peak pair to a map. Missing parts are left out.
func ReplayGainToMap(rg replaygain.ReplayGain) map[string]any {
	meta := map[string]any{}

	if rg.HasRatio() {
		meta["gain"] = replaygain.FormatRatio2Gain(rg.Ratio)
		meta["ratio"] = rg.Ratio
	}

	if rg.HasPeak() {
		meta["peak"] = replaygain.FormatPeak(rg.Peak)
	}

	return meta
}

// TagsToMap converts a parsed tag set to a map, together with the keys that were rejected.
func TagsToMap(tags replaygain.Tags, rejected []string) map[string]any {
	normalized := tags.Normalize()

	formatted := make(map[string]any)
	for key, value := range normalized.Map() {
		formatted[key] = value
	}

	meta := map[string]any{
		"track": ReplayGainToMap(normalized.Track),
		"album": ReplayGainToMap(normalized.Album),
		"tags":  formatted,
	}

	if len(rejected) > 0 {
		rejectedKeys := make([]any, 0, len(rejected))
		for _, key := range rejected {
			rejectedKeys = append(rejectedKeys, key)
		}

		meta["rejected"] = rejectedKeys
	}

	return meta
}
