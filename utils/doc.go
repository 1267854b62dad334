// SPDX-License-Identifier: EPL-2.0

// Package utils holds the numeric building blocks shared by the transform
// stages: Catmull-Rom interpolation, sample rounding and clamping, RMS and a
// radix-2 FFT.
//
// FFT and IFFT only accept power-of-two lengths and report ErrNotPowerOfTwo
// otherwise. Padding is the caller's job (see dsp.PadToPowerOfTwo); it never
// happens inside the recursion.
package utils
