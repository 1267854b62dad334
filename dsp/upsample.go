// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"

	"github.com/ik5/lofipcm/utils"
)

const (
	// MaxFactor bounds the resampling factor accepted by Upsample.
	MaxFactor = 1 << 10
	// MaxUpsampleOutput bounds the number of samples Upsample produces.
	MaxUpsampleOutput = 1 << 25
)

// Upsample inserts factor-1 Catmull-Rom points after each sample.
//
// The window p0..p3 slides one sample at a time; for each position p0 is
// emitted followed by CubicInterpolate(p0, p1, p2, p3, j/factor) for
// j = 1..factor-1. Only len(samples)-3 windows exist, so the last three
// samples are never emitted as anchors and the output has
// (len(samples)-3)*factor values. factor must be in [1, MaxFactor] and the
// output may not exceed MaxUpsampleOutput samples.
func Upsample(samples []float64, factor int) ([]float64, error) {
	if factor <= 0 || factor > MaxFactor {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrInvalidFactor, factor, MaxFactor)
	}
	if len(samples) < 4 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientSamples, len(samples))
	}
	windows := len(samples) - 3
	if factor > MaxUpsampleOutput/windows {
		return nil, fmt.Errorf("%w: %d windows x %d exceeds %d output samples",
			ErrInvalidFactor, windows, factor, MaxUpsampleOutput)
	}

	out := make([]float64, 0, windows*factor)
	for i := 0; i+3 < len(samples); i++ {
		p0, p1, p2, p3 := samples[i], samples[i+1], samples[i+2], samples[i+3]
		out = append(out, p0)
		for j := 1; j < factor; j++ {
			out = append(out, utils.CubicInterpolate(p0, p1, p2, p3, float64(j)/float64(factor)))
		}
	}
	return out, nil
}
