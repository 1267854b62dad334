// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/lofipcm/audio"
)

// frameParser is the part of flac.Stream used by source, split out for tests.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	stream     frameParser
	closer     io.Closer
	sampleRate int
	channels   int
	scale      float64
	pending    []float64
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// next parses one frame into s.pending. It reports false at the end of the
// stream.
func (s *source) next() (bool, error) {
	f, err := s.stream.ParseNext()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrFrameData, err)
	}
	if len(f.Subframes) != s.channels {
		return false, fmt.Errorf("%w: %d subframes for %d channels", ErrFrameData, len(f.Subframes), s.channels)
	}

	n := int(f.BlockSize)
	s.pending = s.pending[:0]
	for i := range n {
		for _, sub := range f.Subframes {
			if i >= len(sub.Samples) {
				return false, fmt.Errorf("%w: short subframe", ErrFrameData)
			}
			s.pending = append(s.pending, float64(sub.Samples[i])/s.scale)
		}
	}
	return true, nil
}

func (s *source) ReadSamples(dst []float64) (int, error) {
	values := len(dst) / s.channels * s.channels
	if values == 0 {
		return 0, nil
	}

	n := 0
	for n < values {
		if len(s.pending) == 0 {
			if s.done {
				break
			}
			ok, err := s.next()
			if err != nil {
				return n, err
			}
			if !ok {
				s.done = true
				break
			}
		}
		c := copy(dst[n:values], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Decoder reads FLAC streams of 4 to 32 bits per sample.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info.NChannels == 0 || info.SampleRate == 0 {
		stream.Close()
		return nil, fmt.Errorf("%w: %d channels at %d Hz", ErrNotFlacFile, info.NChannels, info.SampleRate)
	}
	if info.BitsPerSample < 4 || info.BitsPerSample > 32 {
		stream.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, info.BitsPerSample)
	}

	return newSource(stream, stream, int(info.SampleRate), int(info.NChannels), int(info.BitsPerSample)), nil
}

func newSource(p frameParser, c io.Closer, sampleRate, channels, bits int) *source {
	return &source{
		stream:     p,
		closer:     c,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      math.Ldexp(1, bits-1),
	}
}
