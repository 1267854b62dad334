// SPDX-License-Identifier: EPL-2.0

package dsp

import "fmt"

// MixDown averages the channels of every frame into a single sample.
func MixDown(frames [][]float64) ([]float64, error) {
	out := make([]float64, len(frames))
	for i, frame := range frames {
		if len(frame) == 0 {
			return nil, fmt.Errorf("%w: frame %d", ErrEmptyFrame, i)
		}

		var sum float64
		for _, x := range frame {
			sum += x
		}
		out[i] = sum / float64(len(frame))
	}
	return out, nil
}
