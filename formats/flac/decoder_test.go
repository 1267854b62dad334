// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/mewkiz/flac/frame"

	"github.com/ik5/lofipcm/audio"
	"github.com/ik5/lofipcm/codecerr"
)

// mockParser returns the queued frames, then err (io.EOF when nil).
type mockParser struct {
	frames []*frame.Frame
	err    error
	closed bool
}

func (m *mockParser) ParseNext() (*frame.Frame, error) {
	if len(m.frames) == 0 {
		if m.err != nil {
			return nil, m.err
		}
		return nil, io.EOF
	}
	f := m.frames[0]
	m.frames = m.frames[1:]
	return f, nil
}

func (m *mockParser) Close() error {
	m.closed = true
	return nil
}

// makeFrame builds a frame from one sample slice per channel.
func makeFrame(channels ...[]int32) *frame.Frame {
	f := &frame.Frame{}
	f.BlockSize = uint16(len(channels[0]))
	for _, ch := range channels {
		f.Subframes = append(f.Subframes, &frame.Subframe{Samples: ch})
	}
	return f
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("fLaC"), []byte("RIFF....WAVEfmt ")} {
		_, err := Decoder{}.Decode(bytes.NewReader(data))
		if !errors.Is(err, ErrNotFlacFile) {
			t.Errorf("Decode(%q) error = %v, want ErrNotFlacFile", data, err)
		}
		if !errors.Is(err, codecerr.ErrFormat) {
			t.Errorf("Decode(%q) error = %v, want format kind", data, err)
		}
	}
}

func TestSource_InterleavesAndScales(t *testing.T) {
	t.Parallel()

	p := &mockParser{frames: []*frame.Frame{
		makeFrame([]int32{0, 16384, -32768}, []int32{8192, -16384, 32767}),
		makeFrame([]int32{1}, []int32{-1}),
	}}
	src := newSource(p, p, 44100, 2, 16)

	// a 4-value buffer splits the first frame across reads
	buf, err := audio.ReadAll(src, 4)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	want := []float64{0, 0.25, 0.5, -0.5, -1, 32767.0 / 32768, 1.0 / 32768, -1.0 / 32768}
	if len(buf.Data) != len(want) {
		t.Fatalf("got %d values, want %d", len(buf.Data), len(want))
	}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, buf.Data[i], want[i])
		}
	}
	if buf.Channels != 2 || buf.SampleRate != 44100 {
		t.Errorf("format = %d ch %d Hz, want 2 ch 44100 Hz", buf.Channels, buf.SampleRate)
	}

	if err := src.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !p.closed {
		t.Error("Close did not close the stream")
	}
}

func TestSource_EOFIsSticky(t *testing.T) {
	t.Parallel()

	p := &mockParser{frames: []*frame.Frame{makeFrame([]int32{1, 2})}}
	src := newSource(p, nil, 8000, 1, 8)

	dst := make([]float64, 8)
	n, err := src.ReadSamples(dst)
	if n != 2 || err != nil {
		t.Fatalf("first read = %d, %v; want 2, nil", n, err)
	}
	for range 2 {
		if n, err := src.ReadSamples(dst); n != 0 || !errors.Is(err, io.EOF) {
			t.Fatalf("read after end = %d, %v; want 0, io.EOF", n, err)
		}
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close with no closer: %v", err)
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		parser *mockParser
	}{
		{name: "parse failure", parser: &mockParser{err: errors.New("crc mismatch")}},
		{name: "channel mismatch", parser: &mockParser{frames: []*frame.Frame{makeFrame([]int32{1})}}},
		{name: "short subframe", parser: &mockParser{frames: []*frame.Frame{
			makeFrame([]int32{1, 2}, []int32{3}),
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSource(tt.parser, nil, 8000, 2, 16)
			_, err := src.ReadSamples(make([]float64, 8))
			if !errors.Is(err, ErrFrameData) {
				t.Fatalf("ReadSamples error = %v, want ErrFrameData", err)
			}
			if !errors.Is(err, codecerr.ErrFormat) {
				t.Errorf("ReadSamples error = %v, want format kind", err)
			}
		})
	}
}

func TestSource_SmallBuffer(t *testing.T) {
	t.Parallel()

	p := &mockParser{frames: []*frame.Frame{makeFrame([]int32{1}, []int32{2})}}
	src := newSource(p, nil, 8000, 2, 16)

	// fewer values than one frame of channels reads nothing
	if n, err := src.ReadSamples(make([]float64, 1)); n != 0 || err != nil {
		t.Fatalf("ReadSamples(1) = %d, %v; want 0, nil", n, err)
	}
}
