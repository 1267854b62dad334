// SPDX-License-Identifier: EPL-2.0

package dsp

const DefaultEmphasisCoeff = 0.95

// PreEmphasize applies y[0] = x[0], y[i] = x[i] - coeff*x[i-1].
// Empty input is returned as is.
func PreEmphasize(samples []float64, coeff float64) []float64 {
	if len(samples) == 0 {
		return samples
	}

	out := make([]float64, len(samples))
	out[0] = samples[0]
	for i := 1; i < len(samples); i++ {
		out[i] = samples[i] - coeff*samples[i-1]
	}
	return out
}

// DeEmphasisStep returns the next de-emphasis output from the previous
// output and the current input.
func DeEmphasisStep(prevOut, x, coeff float64) float64 {
	return x + coeff*prevOut
}

// DeEmphasize inverts PreEmphasize with the recursion
// y[0] = x[0], y[i] = x[i] + coeff*y[i-1].
//
// Each output depends on the previous output, so the loop is strictly
// sequential. Empty input is returned as is.
func DeEmphasize(samples []float64, coeff float64) []float64 {
	if len(samples) == 0 {
		return samples
	}

	out := make([]float64, len(samples))
	out[0] = samples[0]
	for i := 1; i < len(samples); i++ {
		out[i] = DeEmphasisStep(out[i-1], samples[i], coeff)
	}
	return out
}
