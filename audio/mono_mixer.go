// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer averages the channels of each frame of src into one sample.
type MonoMixer struct {
	src Source
	tmp []float64
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float64, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("close source: %w", err)
	}
	return nil
}

// ReadSamples fills dst with up to len(dst) mono samples.
func (m *MonoMixer) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	// grow but never shrink, so steady-state reads do not allocate
	needed := len(dst) * channels
	if cap(m.tmp) < needed {
		m.tmp = make([]float64, needed)
	}
	m.tmp = m.tmp[:needed]

	n, err := m.src.ReadSamples(m.tmp)
	frames := n / channels
	inv := 1 / float64(channels)

	for f := range frames {
		var sum float64
		for _, x := range m.tmp[f*channels : (f+1)*channels] {
			sum += x
		}
		dst[f] = sum * inv
	}

	return frames, err
}
