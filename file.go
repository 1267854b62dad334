// SPDX-License-Identifier: EPL-2.0

package lofipcm

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ik5/lofipcm/audio"
	"github.com/ik5/lofipcm/codec"
	"github.com/ik5/lofipcm/codecerr"
	"github.com/ik5/lofipcm/container"
	"github.com/ik5/lofipcm/formats/wav"
	"github.com/ik5/lofipcm/internal/logging"
)

var (
	log = logging.NewLogger("lofipcm")

	registry = sync.OnceValue(DefaultRegistry)
)

// Decode opens path and returns a Source from the decoder registered for its
// extension in reg. The returned close function releases both.
func Decode(reg *audio.Registry, path string) (audio.Source, func() error, error) {
	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q (known: %v)", ErrUnsupportedFormat, ext, reg.Formats())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &codecerr.ResourceError{Op: "open", Path: path, Err: err}
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}

	closeAll := func() error {
		serr := src.Close()
		if err := f.Close(); err != nil {
			return &codecerr.ResourceError{Op: "close", Path: path, Err: err}
		}
		return serr
	}
	return src, closeAll, nil
}

// CompressFile decodes inPath, compresses it with cfg and writes the
// container to outPath. Decoders come from DefaultRegistry.
func CompressFile(inPath, outPath string, cfg codec.Config) (*codec.Record, error) {
	return CompressFileWith(registry(), inPath, outPath, cfg)
}

// CompressFileWith is CompressFile with decoders looked up in reg. A failure
// to close the input is returned when nothing else failed.
func CompressFileWith(reg *audio.Registry, inPath, outPath string, cfg codec.Config) (rec *codec.Record, err error) {
	src, closeSrc, err := Decode(reg, inPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closeSrc(); cerr != nil && err == nil {
			rec, err = nil, cerr
		}
	}()

	log.Infof("compressing %s (%d Hz, %d ch)", inPath, src.SampleRate(), src.Channels())

	rec, err = codec.CompressSource(src, cfg)
	if err != nil {
		return nil, fmt.Errorf("compress %s: %w", inPath, err)
	}

	if err := container.WriteFile(outPath, rec); err != nil {
		return nil, err
	}
	log.Infof("wrote %s: %d samples at %d Hz", outPath, len(rec.Samples), rec.SampleRate)

	return rec, nil
}

// RestoreFile reads the container at inPath, restores it with cfg and writes
// a mono 16-bit WAV to outPath. It returns the number of samples written and
// their rate.
func RestoreFile(inPath, outPath string, cfg codec.Config) (int, uint32, error) {
	rec, err := container.ReadFile(inPath)
	if err != nil {
		return 0, 0, err
	}

	samples, rate, err := codec.Restore(rec, cfg)
	if err != nil {
		return 0, 0, fmt.Errorf("restore %s: %w", inPath, err)
	}

	if err := wav.WriteFile(outPath, samples, int(rate)); err != nil {
		return 0, 0, err
	}
	log.Infof("wrote %s: %d samples at %d Hz", outPath, len(samples), rate)

	return len(samples), rate, nil
}
