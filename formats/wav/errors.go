// SPDX-License-Identifier: EPL-2.0

package wav

import "github.com/ik5/lofipcm/codecerr"

var (
	ErrNotWavFile          = codecerr.New(codecerr.ErrFormat, "not a WAV file")
	ErrUnsupportedEncoding = codecerr.New(codecerr.ErrFormat, "only integer PCM WAV is supported")
	ErrUnsupportedBitDepth = codecerr.New(codecerr.ErrFormat, "unsupported WAV bit depth")
	ErrPCMData             = codecerr.New(codecerr.ErrFormat, "unreadable WAV PCM data")

	ErrNoSamples         = codecerr.New(codecerr.ErrValidation, "no samples to write")
	ErrInvalidSampleRate = codecerr.New(codecerr.ErrValidation, "sample rate must be positive")
)
