// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/lofipcm/internal/audiotest"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 100, 0.5)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}

	buf := make([]float64, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}
	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_Average(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		value    func(ch int) float64
		want     float64
	}{
		{"stereo", 2, func(ch int) float64 { return 0.4 + 0.2*float64(ch) }, 0.5},
		{"opposite phase", 2, func(ch int) float64 { return 1 - 2*float64(ch) }, 0},
		{"quad", 4, func(ch int) float64 { return float64(ch) / 10 }, 0.15},
		{"six channels", 6, func(int) float64 { return -0.25 }, -0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.channels, 50, func(_, ch int) float64 {
				return tt.value(ch)
			})
			mixer := NewMonoMixer(src)

			buf := make([]float64, 20)
			n, err := mixer.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 20 {
				t.Fatalf("ReadSamples() n = %d, want 20", n)
			}
			for i := range n {
				if math.Abs(buf[i]-tt.want) > 1e-12 {
					t.Fatalf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 15))
	buf := make([]float64, 10)

	total := 0
	for {
		n, err := mixer.ReadSamples(buf)
		total += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 15 {
		t.Errorf("total frames = %d, want 15", total)
	}
}

func TestMonoMixer_LargeReadGrowsBuffer(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewConstantSource(8000, 2, 10000, 0.25))
	buf := make([]float64, 8192)

	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 8192 {
		t.Fatalf("ReadSamples() n = %d, want 8192", n)
	}
	if buf[n-1] != 0.25 {
		t.Errorf("buf[last] = %v, want 0.25", buf[n-1])
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10))
	n, err := mixer.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestMonoMixer_InvalidChannels(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 0, 10))
	_, err := mixer.ReadSamples(make([]float64, 4))
	if !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidChannels", err)
	}
}

func TestMonoMixer_CloseForwards(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 10)
	if err := NewMonoMixer(src).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}

func BenchmarkMonoMixer_Stereo(b *testing.B) {
	src := audiotest.NewSineSource(44100, 2, 1<<30, 440)
	mixer := NewMonoMixer(src)
	buf := make([]float64, 4096)

	b.ResetTimer()
	for b.Loop() {
		if _, err := mixer.ReadSamples(buf); err != nil {
			b.Fatal(err)
		}
	}
}
