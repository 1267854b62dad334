// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/lofipcm/dsp"
)

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rec     *Record
		wantErr bool
	}{
		{"valid", &Record{SampleRate: 22050, BitDepth: 8, DownsampleFactor: 2, Samples: []int32{-128, 0, 127}}, false},
		{"empty samples", &Record{SampleRate: 8000, BitDepth: 8, DownsampleFactor: 2}, false},
		{"32 bits", &Record{SampleRate: 8000, BitDepth: 32, DownsampleFactor: 1, Samples: []int32{-1 << 31, 1<<31 - 1}}, false},
		{"nil", nil, true},
		{"zero rate", &Record{BitDepth: 8, DownsampleFactor: 2}, true},
		{"zero bits", &Record{SampleRate: 8000, DownsampleFactor: 2}, true},
		{"33 bits", &Record{SampleRate: 8000, BitDepth: 33, DownsampleFactor: 2}, true},
		{"zero factor", &Record{SampleRate: 8000, BitDepth: 8}, true},
		{"max factor", &Record{SampleRate: 8000, BitDepth: 8, DownsampleFactor: dsp.MaxFactor}, false},
		{"factor above max", &Record{SampleRate: 8000, BitDepth: 8, DownsampleFactor: dsp.MaxFactor + 1}, true},
		{"factor 2^30", &Record{SampleRate: 8000, BitDepth: 8, DownsampleFactor: 1 << 30, Samples: []int32{1, 2, 3, 4}}, true},
		{"max output rate", &Record{SampleRate: math.MaxUint32, BitDepth: 8, DownsampleFactor: 1}, false},
		{"output rate overflow", &Record{SampleRate: 1 << 31, BitDepth: 8, DownsampleFactor: 3}, true},
		{"sample too large", &Record{SampleRate: 8000, BitDepth: 8, DownsampleFactor: 2, Samples: []int32{128}}, true},
		{"sample too small", &Record{SampleRate: 8000, BitDepth: 4, DownsampleFactor: 2, Samples: []int32{-9}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.rec.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("Validate() error = %v, want ErrInvalidRecord", err)
			}
		})
	}
}

func TestRecord_OutputRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rec  *Record
		want uint32
	}{
		{&Record{SampleRate: 22050, BitDepth: 8, DownsampleFactor: 2}, 44100},
		{&Record{SampleRate: 1 << 21, BitDepth: 8, DownsampleFactor: dsp.MaxFactor}, 1 << 31},
	}

	for _, tt := range tests {
		if got := tt.rec.OutputRate(); got != tt.want {
			t.Errorf("OutputRate(%d x %d) = %d, want %d", tt.rec.SampleRate, tt.rec.DownsampleFactor, got, tt.want)
		}
	}
}
