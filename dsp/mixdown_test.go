// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"errors"
	"math"
	"testing"
)

func TestMixDown(t *testing.T) {
	t.Parallel()

	frames := [][]float64{
		{0.4, 0.6},
		{1},
		{0, 0.1, 0.2, 0.3},
		{-1, 1},
	}

	got, err := MixDown(frames)
	if err != nil {
		t.Fatalf("MixDown() error = %v", err)
	}

	want := []float64{0.5, 1, 0.15, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMixDown_EmptyFrame(t *testing.T) {
	t.Parallel()

	_, err := MixDown([][]float64{{0.1, 0.2}, {}})
	if !errors.Is(err, ErrEmptyFrame) {
		t.Errorf("MixDown() error = %v, want ErrEmptyFrame", err)
	}
}

func TestMixDown_NoFrames(t *testing.T) {
	t.Parallel()

	got, err := MixDown(nil)
	if err != nil {
		t.Fatalf("MixDown(nil) error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("MixDown(nil) = %v, want []", got)
	}
}
