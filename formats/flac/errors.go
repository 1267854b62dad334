// SPDX-License-Identifier: EPL-2.0

package flac

import "github.com/ik5/lofipcm/codecerr"

var (
	ErrNotFlacFile         = codecerr.New(codecerr.ErrFormat, "not a FLAC stream")
	ErrUnsupportedBitDepth = codecerr.New(codecerr.ErrFormat, "unsupported FLAC bit depth")
	ErrFrameData           = codecerr.New(codecerr.ErrFormat, "corrupt FLAC frame")
)
