// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"

	"github.com/ik5/lofipcm/audio"
	"github.com/ik5/lofipcm/dsp"
	"github.com/ik5/lofipcm/internal/logging"
)

var log = logging.NewLogger("lofipcm/codec")

// readChunk is the number of values CompressSource pulls per read.
const readChunk = 4096

// Compress encodes mono samples recorded at sampleRate. The record's rate is
// sampleRate / cfg.DownsampleFactor (integer division), which must stay
// positive.
func Compress(samples []float64, sampleRate uint32, cfg Config) (*Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("compress: %w", dsp.ErrEmptyBuffer)
	}
	if sampleRate == 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive", ErrInvalidRate)
	}
	factor := uint32(cfg.DownsampleFactor)
	if sampleRate/factor == 0 {
		return nil, fmt.Errorf("%w: %d Hz is below downsample factor %d", ErrInvalidRate, sampleRate, factor)
	}

	normalized := dsp.Normalize(samples, cfg.normalizeParams())
	log.Tracef("%s: %d samples", StageNormalize, len(normalized))

	emphasized := dsp.PreEmphasize(normalized, cfg.EmphasisCoeff)
	log.Tracef("%s: %d samples", StagePreEmphasis, len(emphasized))

	reduced, err := dsp.AdaptiveDownsample(emphasized, cfg.DownsampleFactor, cfg.TransientThreshold)
	if err != nil {
		return nil, stageErr(StageDownsample, err)
	}
	log.Tracef("%s: %d -> %d samples", StageDownsample, len(emphasized), len(reduced))

	quantized, err := dsp.ReduceBitDepth(reduced, cfg.BitDepth)
	if err != nil {
		return nil, stageErr(StageQuantize, err)
	}

	rec := &Record{
		SampleRate:       sampleRate / factor,
		BitDepth:         uint32(cfg.BitDepth),
		DownsampleFactor: factor,
		Samples:          quantized,
	}
	log.Debugf("compressed %d samples at %d Hz into %d at %d Hz, %d bits",
		len(samples), sampleRate, len(rec.Samples), rec.SampleRate, rec.BitDepth)

	return rec, nil
}

// CompressFrames mixes multi-channel frames down to mono by arithmetic mean,
// then compresses them. Every frame must hold at least one channel.
func CompressFrames(frames [][]float64, sampleRate uint32, cfg Config) (*Record, error) {
	mono, err := dsp.MixDown(frames)
	if err != nil {
		return nil, stageErr(StageMixdown, err)
	}
	return Compress(mono, sampleRate, cfg)
}

// CompressSource drains src and compresses it. When cfg.InputRate is set the
// stream is resampled to that rate first. src is not closed.
func CompressSource(src audio.Source, cfg Config) (*Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var stream audio.Source = src
	if cfg.InputRate > 0 && cfg.InputRate != src.SampleRate() {
		r, err := audio.NewResampler(src, cfg.InputRate)
		if err != nil {
			return nil, fmt.Errorf("resample input: %w", err)
		}
		log.Debugf("resampling input %d Hz -> %d Hz", src.SampleRate(), cfg.InputRate)
		stream = r
	}

	if stream.Channels() <= 0 {
		return nil, stageErr(StageMixdown, fmt.Errorf("%w: %d", audio.ErrInvalidChannels, stream.Channels()))
	}
	if stream.Channels() > 1 {
		log.Tracef("%s: %d channels", StageMixdown, stream.Channels())
	}

	buf, err := audio.ReadAll(audio.NewMonoMixer(stream), readChunk)
	if err != nil {
		return nil, err
	}
	if buf.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: source reports %d Hz", ErrInvalidRate, buf.SampleRate)
	}

	return Compress(buf.Data, uint32(buf.SampleRate), cfg)
}
