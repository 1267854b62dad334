// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"github.com/ik5/lofipcm/dsp"
)

// Restore reconstructs samples from rec and returns them with their rate,
// rec.SampleRate * rec.DownsampleFactor. The record needs at least four
// samples for the cubic upsampler.
func Restore(rec *Record, cfg Config) ([]float64, uint32, error) {
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}
	if err := rec.Validate(); err != nil {
		return nil, 0, err
	}

	values, err := dsp.Dequantize(rec.Samples, int(rec.BitDepth), cfg.Dequantize)
	if err != nil {
		return nil, 0, stageErr(StageDequantize, err)
	}

	upsampled, err := dsp.Upsample(values, int(rec.DownsampleFactor))
	if err != nil {
		return nil, 0, stageErr(StageUpsample, err)
	}
	log.Tracef("%s: %d -> %d samples", StageUpsample, len(values), len(upsampled))

	widened, err := dsp.SpectralCopy(upsampled, cfg.MirrorGain)
	if err != nil {
		return nil, 0, stageErr(StageSpectralCopy, err)
	}

	flat := dsp.DeEmphasize(widened, cfg.EmphasisCoeff)
	out := dsp.Normalize(flat, cfg.normalizeParams())

	rate := rec.OutputRate()
	log.Debugf("restored %d samples at %d Hz from %d at %d Hz",
		len(out), rate, len(rec.Samples), rec.SampleRate)

	return out, rate, nil
}
