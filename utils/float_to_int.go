// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp limits x to [-1, 1].
func Clamp(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}

// QuantizeSample clamps x to [-1, 1], scales it by maxVal and rounds to the
// nearest integer with ties going to the even neighbour.
func QuantizeSample(x, maxVal float64) int32 {
	return int32(math.RoundToEven(Clamp(x) * maxVal))
}
