// SPDX-License-Identifier: EPL-2.0

package vorbis

import "github.com/ik5/lofipcm/codecerr"

var (
	ErrNotVorbisFile = codecerr.New(codecerr.ErrFormat, "not an Ogg Vorbis stream")
	ErrPacketData    = codecerr.New(codecerr.ErrFormat, "corrupt Vorbis packet")
)
