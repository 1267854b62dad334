// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/lofipcm/codecerr"

var (
	ErrInvalidDstSize  = codecerr.New(codecerr.ErrValidation, "dst size must be multiple of channels")
	ErrInvalidChannels = codecerr.New(codecerr.ErrValidation, "channel count must be positive")
	ErrInvalidRate     = codecerr.New(codecerr.ErrValidation, "sample rate must be positive")
)
