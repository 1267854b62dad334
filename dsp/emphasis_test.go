// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"testing"
)

func TestPreEmphasize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    []float64
		coeff float64
		want  []float64
	}{
		{name: "empty", in: []float64{}, coeff: 0.95, want: []float64{}},
		{name: "single", in: []float64{0.5}, coeff: 0.95, want: []float64{0.5}},
		{name: "ramp", in: []float64{0, 0.5, 1, 0.5, 0}, coeff: 0.95, want: []float64{0, 0.5, 0.525, -0.45, -0.475}},
		{name: "zero coeff", in: []float64{0.1, 0.2}, coeff: 0, want: []float64{0.1, 0.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := PreEmphasize(tt.in, tt.coeff)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDeEmphasize(t *testing.T) {
	t.Parallel()

	in := []float64{0.1, 0.2, 0.3, 0.2, 0.1}
	got := DeEmphasize(in, DefaultEmphasisCoeff)

	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	if math.Abs(got[0]-in[0]) > 0.001 {
		t.Errorf("got[0] = %v, want %v", got[0], in[0])
	}

	// the recursion feeds on previous outputs, not inputs
	if want := 0.2 + 0.95*0.1; math.Abs(got[1]-want) > 1e-12 {
		t.Errorf("got[1] = %v, want %v", got[1], want)
	}
	if want := 0.3 + 0.95*got[1]; math.Abs(got[2]-want) > 1e-12 {
		t.Errorf("got[2] = %v, want %v", got[2], want)
	}

	if got := DeEmphasize([]float64{}, DefaultEmphasisCoeff); len(got) != 0 {
		t.Errorf("DeEmphasize([]) = %v, want []", got)
	}
}

func TestDeEmphasisStep(t *testing.T) {
	t.Parallel()

	if got := DeEmphasisStep(1, 0.5, 0.95); math.Abs(got-1.45) > 1e-12 {
		t.Errorf("DeEmphasisStep(1, 0.5, 0.95) = %v, want 1.45", got)
	}
	if got := DeEmphasisStep(0, 0.5, 0.95); got != 0.5 {
		t.Errorf("DeEmphasisStep(0, 0.5, 0.95) = %v, want 0.5", got)
	}
}

func TestEmphasisRoundTrip(t *testing.T) {
	t.Parallel()

	in := make([]float64, 500)
	for i := range in {
		in[i] = 0.6*math.Sin(float64(i)*0.07) + 0.2*math.Cos(float64(i)*1.3)
	}

	for _, coeff := range []float64{0.5, 0.9, DefaultEmphasisCoeff, 0.99} {
		got := DeEmphasize(PreEmphasize(in, coeff), coeff)
		for i := range in {
			if math.Abs(got[i]-in[i]) > 1e-9 {
				t.Fatalf("coeff %v: round trip[%d] = %v, want %v", coeff, i, got[i], in[i])
			}
		}
	}
}
