// SPDX-License-Identifier: EPL-2.0

package dsp

import "github.com/ik5/lofipcm/utils"

const (
	DefaultTargetRMS        = 0.07
	DefaultSilenceThreshold = 0.0001
	DefaultMaxGain          = 20.0
)

// NormalizeParams controls Normalize.
type NormalizeParams struct {
	// TargetRMS is the RMS level the output is scaled towards.
	TargetRMS float64
	// SilenceThreshold: buffers with a lower RMS are returned untouched.
	SilenceThreshold float64
	// MaxGain caps the applied gain so near-silent input is not blown up.
	MaxGain float64
}

func DefaultNormalizeParams() NormalizeParams {
	return NormalizeParams{
		TargetRMS:        DefaultTargetRMS,
		SilenceThreshold: DefaultSilenceThreshold,
		MaxGain:          DefaultMaxGain,
	}
}

// Normalize scales samples so their RMS approaches p.TargetRMS.
//
// An empty buffer, or one whose RMS is below p.SilenceThreshold, is returned
// as is (same slice). Otherwise a new slice scaled by
// min(TargetRMS/rms, MaxGain) is returned.
func Normalize(samples []float64, p NormalizeParams) []float64 {
	if len(samples) == 0 {
		return samples
	}

	rms := utils.RMS(samples)
	if rms == 0 || rms < p.SilenceThreshold {
		return samples
	}

	gain := min(p.TargetRMS/rms, p.MaxGain)
	out := make([]float64, len(samples))
	for i, x := range samples {
		out[i] = x * gain
	}
	return out
}
