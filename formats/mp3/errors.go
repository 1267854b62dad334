// SPDX-License-Identifier: EPL-2.0

package mp3

import "github.com/ik5/lofipcm/codecerr"

var (
	ErrNotMP3File = codecerr.New(codecerr.ErrFormat, "not an MP3 stream")
	ErrFrameData  = codecerr.New(codecerr.ErrFormat, "corrupt MP3 frame data")
)
