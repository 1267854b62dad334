// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

var ErrNotPowerOfTwo = errors.New("length is not a power of two")

// IsPowerOfTwo reports whether n is 1, 2, 4, 8, ...
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n. n <= 1 yields 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// FFT returns the discrete Fourier transform of x using the twiddle factors
// e^{-2πik/n}. len(x) must be a power of two; x is not modified.
func FFT(x []complex128) ([]complex128, error) {
	if !IsPowerOfTwo(len(x)) {
		return nil, fmt.Errorf("fft: %w: %d", ErrNotPowerOfTwo, len(x))
	}
	return fft(x), nil
}

// IFFT is the inverse of FFT, normalised by len(x).
func IFFT(x []complex128) ([]complex128, error) {
	if !IsPowerOfTwo(len(x)) {
		return nil, fmt.Errorf("ifft: %w: %d", ErrNotPowerOfTwo, len(x))
	}

	conj := make([]complex128, len(x))
	for i, v := range x {
		conj[i] = cmplx.Conj(v)
	}

	out := fft(conj)
	scale := complex(1/float64(len(x)), 0)
	for i, v := range out {
		out[i] = cmplx.Conj(v) * scale
	}
	return out, nil
}

// fft is the recursive radix-2 core. The caller guarantees a power-of-two length.
func fft(x []complex128) []complex128 {
	n := len(x)
	if n <= 1 {
		return append([]complex128(nil), x...)
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := range half {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}
	even = fft(even)
	odd = fft(odd)

	out := make([]complex128, n)
	for k := range half {
		angle := -2 * math.Pi * float64(k) / float64(n)
		w := complex(math.Cos(angle), math.Sin(angle)) * odd[k]
		out[k] = even[k] + w
		out[k+half] = even[k] - w
	}
	return out
}
