// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "zero", input: 0, want: 0},
		{name: "inside", input: -0.25, want: -0.25},
		{name: "upper edge", input: 1, want: 1},
		{name: "over max", input: 1.5, want: 1},
		{name: "under min", input: -100, want: -1},
		{name: "positive infinity", input: math.Inf(1), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Clamp(tt.input); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuantizeSample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  float64
		maxVal float64
		want   int32
	}{
		{name: "zero", input: 0, maxVal: 127, want: 0},
		{name: "full scale", input: 1, maxVal: 127, want: 127},
		{name: "negative full scale", input: -1, maxVal: 127, want: -127},
		{name: "clamped", input: 3.7, maxVal: 127, want: 127},
		{name: "rounds down", input: 0.1, maxVal: 127, want: 13},
		{name: "tie goes to even", input: 0.5, maxVal: 1, want: 0},
		{name: "negative tie goes to even", input: -0.5, maxVal: 3, want: -2},
		{name: "one bit", input: 0.9, maxVal: 0, want: 0},
		{name: "32 bits", input: 1, maxVal: math.MaxInt32, want: math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := QuantizeSample(tt.input, tt.maxVal); got != tt.want {
				t.Errorf("QuantizeSample(%v, %v) = %v, want %v", tt.input, tt.maxVal, got, tt.want)
			}
		})
	}
}

// TestQuantizeSampleMonotonic verifies a rising input never yields a falling code.
func TestQuantizeSampleMonotonic(t *testing.T) {
	t.Parallel()

	prev := QuantizeSample(-1, 127)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := QuantizeSample(f, 127)
		if curr < prev {
			t.Errorf("QuantizeSample not monotonic at %v: %v < %v", f, curr, prev)
		}
		prev = curr
	}
}
