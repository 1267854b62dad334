// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"math"

	"github.com/ik5/lofipcm/dsp"
)

// Record is the output of Compress. SampleRate is the already reduced rate;
// the rate Restore produces is SampleRate * DownsampleFactor.
type Record struct {
	SampleRate       uint32
	BitDepth         uint32
	DownsampleFactor uint32
	Samples          []int32
}

// OutputRate is the rate Restore reports for r. Validate guarantees it fits
// in uint32.
func (r *Record) OutputRate() uint32 {
	return uint32(r.outputRate())
}

func (r *Record) outputRate() uint64 {
	return uint64(r.SampleRate) * uint64(r.DownsampleFactor)
}

// Validate checks the header fields, that the output rate fits in uint32 and
// that every sample fits the signed range of BitDepth.
func (r *Record) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidRecord)
	}
	if r.SampleRate == 0 {
		return fmt.Errorf("%w: sample rate is zero", ErrInvalidRecord)
	}
	if r.BitDepth == 0 || r.BitDepth > 32 {
		return fmt.Errorf("%w: bit depth %d out of range [1, 32]", ErrInvalidRecord, r.BitDepth)
	}
	if r.DownsampleFactor == 0 || r.DownsampleFactor > dsp.MaxFactor {
		return fmt.Errorf("%w: downsample factor %d out of range [1, %d]", ErrInvalidRecord, r.DownsampleFactor, dsp.MaxFactor)
	}
	if rate := r.outputRate(); rate > math.MaxUint32 {
		return fmt.Errorf("%w: output rate %d Hz overflows uint32", ErrInvalidRecord, rate)
	}

	limit := int64(dsp.MaxValue(int(r.BitDepth)))
	for i, s := range r.Samples {
		if int64(s) > limit || int64(s) < -limit-1 {
			return fmt.Errorf("%w: sample %d = %d exceeds %d-bit range", ErrInvalidRecord, i, s, r.BitDepth)
		}
	}
	return nil
}
