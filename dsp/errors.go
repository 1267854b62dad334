// SPDX-License-Identifier: EPL-2.0

package dsp

import "github.com/ik5/lofipcm/codecerr"

var (
	ErrEmptyBuffer           = codecerr.New(codecerr.ErrValidation, "sample buffer is empty")
	ErrEmptyFrame            = codecerr.New(codecerr.ErrValidation, "frame has no channels")
	ErrInvalidFactor         = codecerr.New(codecerr.ErrValidation, "factor must be positive")
	ErrInvalidBitDepth       = codecerr.New(codecerr.ErrValidation, "bit depth must be in (0, 32]")
	ErrInsufficientSamples   = codecerr.New(codecerr.ErrValidation, "interpolation needs at least 4 samples")
	ErrUnknownDequantizeMode = codecerr.New(codecerr.ErrValidation, "unknown dequantize mode")
)
