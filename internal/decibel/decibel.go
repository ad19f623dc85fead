// Package decibel converts between decibels and linear amplitude ratios (20*log10 convention).
package decibel

import "math"

// Subnormal ratios are scaled by 2^64 into the normal range before taking the logarithm,
// as math.Log10 loses accuracy below math.SmallestNormal on some architectures.
const subnormalShift = 64

// ToRatio converts a gain in dB to a linear ratio.
func ToRatio(db float64) float64 {
	return math.Pow(10, db/20)
}

// FromRatio converts a linear ratio to dB.
// Returns -Inf for zero and NaN for negative ratios.
func FromRatio(ratio float64) float64 {
	if ratio < 0 {
		return math.NaN()
	}

	if ratio == 0 {
		return math.Inf(-1)
	}

	if ratio < 0x1p-1022 { // smallest normal float64
		return 20 * (math.Log10(ratio*0x1p64) - subnormalShift*math.Log10(2))
	}

	return 20 * math.Log10(ratio)
}
