package replaygain

import (
	"log/slog"
	"math"
	"strconv"
)

/*
Usage:

ratio, ok := replaygain.ParseGain2Ratio("-6.5 dB")
if ok {
    fmt.Println(replaygain.FormatRatio2Gain(ratio)) // -6.5 dB
}

peak, ok := replaygain.ParsePeak("0.988553")

// Canonicalize values before writing them back to tags
ratio = replaygain.NormalizeRatio(ratio)
peak = replaygain.NormalizePeak(peak)

// Capture parse diagnostics
codec := replaygain.NewCodec(replaygain.Options{Logger: logger})
ratio, ok = codec.ParseGain2Ratio(text)

*/

const (
	// RatioUndefined marks a missing or invalid gain. It is never a legitimate ratio.
	RatioUndefined = 0.0
	// RatioMin is the exclusive lower bound of valid ratios.
	RatioMin = 0.0
	// Ratio0dB is unity gain.
	Ratio0dB = 1.0

	// PeakClip is the full-scale sample magnitude.
	PeakClip = 1.0
	// PeakMin is the inclusive lower bound of valid peaks.
	PeakMin = 0.0
	// PeakUndefined marks a missing or invalid peak.
	PeakUndefined = -PeakClip

	// GainUnit is the unit label appended to formatted gains.
	GainUnit = "dB"
)

const (
	gainSuffix = " " + GainUnit

	// Values are written with 6 significant digits, trailing zeros removed.
	formatPrecision = 6
)

// IsValidRatio reports whether ratio is a usable gain. RatioUndefined, negatives, NaN and +Inf are not.
func IsValidRatio(ratio float64) bool {
	return ratio > RatioMin && !math.IsInf(ratio, 1)
}

// IsValidPeak reports whether peak lies within [PeakMin, PeakClip].
func IsValidPeak(peak float64) bool {
	return PeakMin <= peak && peak <= PeakClip
}

// Options configures a Codec.
type Options struct {
	// Logger receives parse diagnostics at debug level (default: slog.Default()).
	Logger *slog.Logger
}

// DefaultOptions returns the options used by the package-level functions.
func DefaultOptions() Options {
	return Options{}
}

// Codec parses and normalizes ReplayGain values, reporting rejected input to its logger.
// A Codec is stateless and safe for concurrent use.
type Codec struct {
	logger *slog.Logger
}

// NewCodec returns a Codec configured with opts.
func NewCodec(opts Options) *Codec {
	return &Codec{logger: opts.Logger}
}

// The default logger is resolved per call so that slog.SetDefault is honored.
func (c *Codec) log() *slog.Logger {
	if c == nil || c.logger == nil {
		return slog.Default()
	}

	return c.logger
}

//nolint:gochecknoglobals // stateless, effectively const
var defaultCodec = NewCodec(DefaultOptions())

// ParseGain2Ratio parses a gain string such as "-6.5 dB" into a linear ratio.
// On failure it returns (RatioUndefined, false).
func ParseGain2Ratio(text string) (float64, bool) {
	return defaultCodec.ParseGain2Ratio(text)
}

// NormalizeRatio passes a valid ratio through FormatRatio2Gain and ParseGain2Ratio.
// Invalid ratios become RatioUndefined.
func NormalizeRatio(ratio float64) float64 {
	return defaultCodec.NormalizeRatio(ratio)
}

// ParsePeak parses a peak string such as "0.988553". On failure it returns (PeakUndefined, false).
func ParsePeak(text string) (float64, bool) {
	return defaultCodec.ParsePeak(text)
}

// NormalizePeak passes a valid peak through FormatPeak and ParsePeak.
// Invalid peaks become PeakUndefined.
func NormalizePeak(peak float64) float64 {
	return defaultCodec.NormalizePeak(peak)
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', formatPrecision, 64)
}
