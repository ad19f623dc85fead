package replaygain

// ReplayGain is a gain/peak pair for one track or one album.
// The zero value holds a valid zero peak; use Undefined for an empty pair.
type ReplayGain struct {
	Ratio float64 // linear gain, RatioUndefined if missing
	Peak  float64 // sample peak, PeakUndefined if missing
}

// Undefined returns a ReplayGain with neither ratio nor peak.
func Undefined() ReplayGain {
	return ReplayGain{
		Ratio: RatioUndefined,
		Peak:  PeakUndefined,
	}
}

func (rg ReplayGain) HasRatio() bool {
	return IsValidRatio(rg.Ratio)
}

func (rg ReplayGain) HasPeak() bool {
	return IsValidPeak(rg.Peak)
}

func (rg *ReplayGain) ResetRatio() {
	rg.Ratio = RatioUndefined
}

func (rg *ReplayGain) ResetPeak() {
	rg.Peak = PeakUndefined
}

// Normalize returns a copy with both ratio and peak normalized.
func (rg ReplayGain) Normalize() ReplayGain {
	return ReplayGain{
		Ratio: NormalizeRatio(rg.Ratio),
		Peak:  NormalizePeak(rg.Peak),
	}
}

// String renders the pair as "<gain> / <peak>", with "-" for a missing part.
func (rg ReplayGain) String() string {
	gain := FormatRatio2Gain(rg.Ratio)
	if gain == "" {
		gain = "-"
	}

	peak := FormatPeak(rg.Peak)
	if peak == "" {
		peak = "-"
	}

	return gain + " / " + peak
}
