// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"
)

const DefaultTransientThreshold = 0.3

// NextIndex returns the index AdaptiveDownsample visits after i: i+1 when the
// jump from samples[i] to samples[i+1] exceeds threshold, i+factor otherwise.
func NextIndex(samples []float64, i, factor int, threshold float64) int {
	if i+1 < len(samples) && math.Abs(samples[i]-samples[i+1]) > threshold {
		return i + 1
	}
	return i + factor
}

// AdaptiveDownsample keeps every visited sample, stepping by factor through
// smooth regions and by one sample across transients.
//
// The output length therefore depends on the content and is at most
// len(samples). factor must be positive.
func AdaptiveDownsample(samples []float64, factor int, threshold float64) ([]float64, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFactor, factor)
	}

	out := make([]float64, 0, len(samples)/factor+1)
	for i := 0; i < len(samples); i = NextIndex(samples, i, factor, threshold) {
		out = append(out, samples[i])
	}
	return out, nil
}
