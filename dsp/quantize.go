// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"

	"github.com/ik5/lofipcm/utils"
)

const DefaultBitDepth = 8

// DequantizeMode selects how quantized integers become float samples again.
type DequantizeMode string

const (
	// DequantizeRaw feeds the integers to the decoder unscaled.
	DequantizeRaw DequantizeMode = "raw"
	// DequantizeUnit divides by the bit depth's maximum value, giving [-1, 1].
	DequantizeUnit DequantizeMode = "unit"
)

func (m DequantizeMode) Valid() bool {
	return m == DequantizeRaw || m == DequantizeUnit
}

func checkBits(bits int) error {
	if bits <= 0 || bits > 32 {
		return fmt.Errorf("%w: got %d", ErrInvalidBitDepth, bits)
	}
	return nil
}

// MaxValue returns 2^(bits-1) - 1, the largest magnitude a signed sample of
// that width holds symmetrically. bits must be in (0, 32].
func MaxValue(bits int) float64 {
	return math.Ldexp(1, bits-1) - 1
}

// ReduceBitDepth clamps each sample to [-1, 1], scales it by MaxValue(bits)
// and rounds to the nearest integer, ties to even.
func ReduceBitDepth(samples []float64, bits int) ([]int32, error) {
	if err := checkBits(bits); err != nil {
		return nil, err
	}

	maxVal := MaxValue(bits)
	out := make([]int32, len(samples))
	for i, x := range samples {
		out[i] = utils.QuantizeSample(x, maxVal)
	}
	return out, nil
}

// Dequantize converts quantized samples back to floats according to mode.
func Dequantize(quantized []int32, bits int, mode DequantizeMode) ([]float64, error) {
	if err := checkBits(bits); err != nil {
		return nil, err
	}

	scale := 1.0
	switch mode {
	case DequantizeRaw:
	case DequantizeUnit:
		// a 1-bit depth only ever produces zeros
		if maxVal := MaxValue(bits); maxVal > 0 {
			scale = 1 / maxVal
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDequantizeMode, mode)
	}

	out := make([]float64, len(quantized))
	for i, q := range quantized {
		out[i] = float64(q) * scale
	}
	return out, nil
}
