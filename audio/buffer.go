// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Buffer is a fully decoded, interleaved PCM clip.
type Buffer struct {
	Data       []float64
	Channels   int
	SampleRate int
}

// Frames returns the number of complete frames in b.
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Data) / b.Channels
}

// ReadAll drains src into a Buffer, reading bufSize values at a time.
// bufSize is rounded down to a whole number of frames (at least one).
func ReadAll(src Source, bufSize int) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	bufSize = max(bufSize/channels, 1) * channels
	out := &Buffer{Channels: channels, SampleRate: src.SampleRate()}
	buf := make([]float64, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out.Data = append(out.Data, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}
		if n == 0 {
			// a source that neither advances nor fails is finished
			break
		}
	}

	return out, nil
}

// bufferSource streams a Buffer.
type bufferSource struct {
	buf *Buffer
	off int
}

// NewBufferSource returns a Source reading b from the start.
func NewBufferSource(b *Buffer) Source {
	return &bufferSource{buf: b}
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.Channels }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float64) (int, error) {
	if s.off >= len(s.buf.Data) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.Data[s.off:])
	s.off += n
	if s.off >= len(s.buf.Data) {
		return n, io.EOF
	}
	return n, nil
}
