// SPDX-License-Identifier: EPL-2.0

package aiff

import "github.com/ik5/lofipcm/codecerr"

var (
	ErrNotAiffFile           = codecerr.New(codecerr.ErrFormat, "not an AIFF file")
	ErrUnsupportedBitDepth   = codecerr.New(codecerr.ErrFormat, "unsupported AIFF bit depth")
	ErrUnsupportedAiffLayout = codecerr.New(codecerr.ErrFormat, "unsupported AIFF layout")
	ErrPCMData               = codecerr.New(codecerr.ErrFormat, "unreadable AIFF sound data")
)
