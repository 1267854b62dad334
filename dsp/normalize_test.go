// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"testing"

	"github.com/ik5/lofipcm/utils"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	p := DefaultNormalizeParams()

	tests := []struct {
		name    string
		samples []float64
		wantRMS float64
	}{
		{name: "ramp", samples: []float64{0.1, 0.2, 0.3}, wantRMS: DefaultTargetRMS},
		{name: "loud", samples: []float64{0.9, -0.9, 0.9, -0.9}, wantRMS: DefaultTargetRMS},
		{name: "gain ceiling", samples: []float64{0.001, -0.001, 0.001}, wantRMS: 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Normalize(tt.samples, p)
			if len(got) != len(tt.samples) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.samples))
			}
			for i, x := range got {
				if x < -1 || x > 1 {
					t.Errorf("got[%d] = %v outside [-1, 1]", i, x)
				}
			}
			if rms := utils.RMS(got); math.Abs(rms-tt.wantRMS) > 1e-9 {
				t.Errorf("RMS = %v, want %v", rms, tt.wantRMS)
			}
		})
	}
}

func TestNormalize_Identity(t *testing.T) {
	t.Parallel()

	p := DefaultNormalizeParams()

	if got := Normalize([]float64{}, p); len(got) != 0 {
		t.Errorf("Normalize([]) = %v, want []", got)
	}
	if got := Normalize(nil, p); got != nil {
		t.Errorf("Normalize(nil) = %v, want nil", got)
	}

	silent := []float64{0, 0, 0, 0}
	if got := Normalize(silent, p); &got[0] != &silent[0] {
		t.Error("silent buffer should be returned unchanged")
	}

	quiet := []float64{0.00005, -0.00005}
	got := Normalize(quiet, p)
	if got[0] != quiet[0] || got[1] != quiet[1] {
		t.Errorf("below-threshold buffer changed: %v", got)
	}
}

func TestNormalize_CustomParams(t *testing.T) {
	t.Parallel()

	in := []float64{0.5, -0.5}
	got := Normalize(in, NormalizeParams{TargetRMS: 0.25, SilenceThreshold: 0.1, MaxGain: 4})

	if got[0] != 0.25 || got[1] != -0.25 {
		t.Errorf("Normalize() = %v, want [0.25 -0.25]", got)
	}
	if in[0] != 0.5 {
		t.Error("Normalize modified its input")
	}
}
