// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/lofipcm/utils"
)

// Resampler streams src at another sample rate using Catmull-Rom
// interpolation. Channel count is preserved. When downsampling a one-pole
// low-pass filter runs on the input to tame aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source samples per output sample
	channels int

	// frames[0..3] hold t-1, t0, t+1, t+2 around the read position
	frames [4][]float64
	// have[i] is false when slot i repeats its neighbour past the end of src
	have   [4]bool
	primed bool

	// position between frames[1] and frames[2], in source samples
	pos float64

	srcBuf []float64
	eof    bool

	lowPass      bool
	alpha        float64
	filterState  []float64
	filterPrimed bool
}

// NewResampler converts src to dstRate. dstRate and the source rate must be
// positive.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, src.SampleRate(), dstRate)
	}
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	ratio := float64(src.SampleRate()) / float64(dstRate)
	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float64, channels),
		lowPass:     ratio > 1,
		alpha:       0.5,
		filterState: make([]float64, channels),
	}
	for i := range r.frames {
		r.frames[i] = make([]float64, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("close source: %w", err)
	}
	return nil
}

// readFrame reads one frame from src into dst, filtering it when
// downsampling. ok is false once src is exhausted.
func (r *Resampler) readFrame(dst []float64) (ok bool, err error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.srcBuf)
	if errors.Is(err, io.EOF) {
		r.eof = true
		err = nil
	}
	if err != nil {
		return false, fmt.Errorf("resample read: %w", err)
	}
	if n < r.channels {
		// a partial frame can only be the tail of the stream
		r.eof = true
		return false, nil
	}

	copy(dst, r.srcBuf)
	if r.lowPass {
		if !r.filterPrimed {
			// start from the first frame to avoid a warm-up ramp
			copy(r.filterState, dst)
			r.filterPrimed = true
		}
		for c := range dst {
			// y[n] = alpha*x[n] + (1-alpha)*y[n-1]
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.filterState[c]
			r.filterState[c] = dst[c]
		}
	}
	return true, nil
}

// fill loads window slot i from src, or repeats slot i-1 past the end.
func (r *Resampler) fill(i int) error {
	ok, err := r.readFrame(r.frames[i])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.frames[i], r.frames[i-1])
	}
	r.have[i] = ok
	return nil
}

func (r *Resampler) prime() error {
	ok, err := r.readFrame(r.frames[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.frames[0], r.frames[1])
	r.have[0], r.have[1] = true, true

	for i := 2; i < len(r.frames); i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}
	r.primed = true
	return nil
}

// advance slides the window forward by one source frame.
func (r *Resampler) advance() error {
	for i := 0; i < 3; i++ {
		copy(r.frames[i], r.frames[i+1])
		r.have[i] = r.have[i+1]
	}
	return r.fill(3)
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of Channels(). The stream ends once the read
// position passes the last source frame.
func (r *Resampler) ReadSamples(dst []float64) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written*r.channels < len(dst) {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
		if !r.have[1] {
			return written * r.channels, io.EOF
		}

		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.frames[0][c], r.frames[1][c], r.frames[2][c], r.frames[3][c], r.pos)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
