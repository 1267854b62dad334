// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds synthetic signals and sources shared by tests.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of channel ch at frame i.
type Waveform func(i, ch int) float64

// MockSource generates frames from a Waveform. It satisfies audio.Source
// without importing it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int
	waveform   Waveform

	// ReadErr, when set, is returned by ReadSamples once the first
	// ErrAfter frames have been delivered.
	ReadErr  error
	ErrAfter int
	// CloseErr is returned by Close.
	CloseErr error
	closed   bool
}

func NewMockSource(sampleRate, channels, frames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float64 { return 0 })
}

// NewSineSource writes the same sine of freq Hz and amplitude 1 to every channel.
func NewSineSource(sampleRate, channels, frames int, freq float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(i, _ int) float64 {
		return math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	})
}

func NewConstantSource(sampleRate, channels, frames int, value float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float64 { return value })
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

func (m *MockSource) Close() error {
	m.closed = true
	return m.CloseErr
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() { m.generated = 0 }

func (m *MockSource) ReadSamples(dst []float64) (int, error) {
	if m.ReadErr != nil && m.generated >= m.ErrAfter {
		return 0, m.ReadErr
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.generated)
	if m.ReadErr != nil {
		n = min(n, m.ErrAfter-m.generated)
	}
	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += n

	if m.generated >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}

// Sine returns n samples of a sine at freq Hz with the given amplitude.
func Sine(n, sampleRate int, freq, amp float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return out
}

// PeakBin returns the index of the largest magnitude in mags, ignoring
// bin 0.
func PeakBin(mags []float64) int {
	peak := 1
	for i := 2; i < len(mags); i++ {
		if mags[i] > mags[peak] {
			peak = i
		}
	}
	return peak
}
