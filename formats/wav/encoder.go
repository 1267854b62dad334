// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/lofipcm/codecerr"
	"github.com/ik5/lofipcm/utils"
)

// WriteBitDepth is the sample size WriteFile uses.
const WriteBitDepth = 16

// Encode writes samples as mono integer PCM WAV at sampleRate. Samples are
// clamped to [-1, 1] first. bitDepth must be 8, 16, 24 or 32.
func Encode(w io.WriteSeeker, samples []float64, sampleRate, bitDepth int) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	var bias int
	switch bitDepth {
	case 8:
		bias = 128
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	maxVal := math.Ldexp(1, bitDepth-1) - 1
	data := make([]int, len(samples))
	for i, x := range samples {
		data[i] = int(math.Round(utils.Clamp(x)*maxVal)) + bias
	}

	enc := gowav.NewEncoder(w, sampleRate, bitDepth, 1, formatPCM)
	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}
	return nil
}

// WriteFile creates or truncates path and writes samples as mono 16-bit PCM.
func WriteFile(path string, samples []float64, sampleRate int) (err error) {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return &codecerr.ResourceError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &codecerr.ResourceError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if err := Encode(f, samples, sampleRate, WriteBitDepth); err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return &codecerr.ResourceError{Op: "write", Path: path, Err: err}
		}
		return err
	}
	return nil
}
