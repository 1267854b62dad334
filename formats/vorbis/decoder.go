// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/lofipcm/audio"
)

// oggReader is the part of oggvorbis.Reader used by source, split out for
// tests.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frameBuf   []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float64) (int, error) {
	values := len(dst) / s.channels * s.channels
	if values == 0 {
		return 0, nil
	}

	if cap(s.frameBuf) < values {
		s.frameBuf = make([]float32, values)
	}
	s.frameBuf = s.frameBuf[:values]

	// oggvorbis counts values, not frames, and may return fewer than asked
	n, err := s.dec.Read(s.frameBuf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w: %w", ErrPacketData, err)
	}
	if n == 0 && err == nil {
		err = io.EOF
	}

	for i, v := range s.frameBuf[:n] {
		dst[i] = float64(v)
	}
	return n, err
}

// Decoder reads Ogg Vorbis streams with any channel count.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}
	if dec.Channels() <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrNotVorbisFile, dec.Channels())
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		frameBuf:   make([]float32, 4096),
	}, nil
}
