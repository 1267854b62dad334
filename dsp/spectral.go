// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math/cmplx"

	"github.com/ik5/lofipcm/utils"
)

const DefaultMirrorGain = 0.5

// PadToPowerOfTwo copies samples into a complex buffer zero-padded to the
// next power of two.
func PadToPowerOfTwo(samples []float64) []complex128 {
	out := make([]complex128, utils.NextPowerOfTwo(len(samples)))
	for i, x := range samples {
		out[i] = complex(x, 0)
	}
	return out
}

// MirrorSpectrum attenuates the upper half of the positive-frequency bins,
// [half/2, half), by gain and writes their conjugates into the matching
// negative-frequency bins i+half. spectrum is modified in place.
func MirrorSpectrum(spectrum []complex128, gain float64) {
	half := len(spectrum) / 2
	g := complex(gain, 0)
	for i := half / 2; i < half; i++ {
		spectrum[i] *= g
		spectrum[i+half] = cmplx.Conj(spectrum[i])
	}
}

// SpectralCopy synthesises high-frequency content lost to decimation.
//
// The buffer is zero-padded to a power of two, transformed, mirrored with
// MirrorSpectrum, transformed back and truncated to its original length;
// only the real part is kept. Empty input is returned as is.
func SpectralCopy(samples []float64, mirrorGain float64) ([]float64, error) {
	if len(samples) == 0 {
		return samples, nil
	}

	spectrum, err := utils.FFT(PadToPowerOfTwo(samples))
	if err != nil {
		return nil, fmt.Errorf("spectral copy: %w", err)
	}

	MirrorSpectrum(spectrum, mirrorGain)

	restored, err := utils.IFFT(spectrum)
	if err != nil {
		return nil, fmt.Errorf("spectral copy: %w", err)
	}

	out := make([]float64, len(samples))
	for i := range out {
		out[i] = real(restored[i])
	}
	return out, nil
}
