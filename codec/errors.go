// SPDX-License-Identifier: EPL-2.0

package codec

import "github.com/ik5/lofipcm/codecerr"

var (
	ErrInvalidRate   = codecerr.New(codecerr.ErrValidation, "invalid sample rate")
	ErrInvalidRecord = codecerr.New(codecerr.ErrValidation, "invalid compressed record")
	ErrInvalidConfig = codecerr.New(codecerr.ErrValidation, "invalid codec config")
)

// Pipeline stage names used in *codecerr.StageError.
const (
	StageMixdown      = "mixdown"
	StageNormalize    = "normalize"
	StagePreEmphasis  = "pre-emphasis"
	StageDownsample   = "downsample"
	StageQuantize     = "quantize"
	StageDequantize   = "dequantize"
	StageUpsample     = "upsample"
	StageSpectralCopy = "spectral-copy"
	StageDeEmphasis   = "de-emphasis"
)

func stageErr(stage string, err error) error {
	return &codecerr.StageError{Stage: stage, Err: err}
}
