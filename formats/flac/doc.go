// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC input with github.com/mewkiz/flac.
//
// # Supported Formats
//
//   - Native FLAC streams ("fLaC" signature), 4 to 32 bits per sample
//   - Any channel count and sample rate
//
// # Decoding FLAC Files
//
//	f, err := os.Open("speech.flac")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	src, err := flac.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//	buf, err := audio.ReadAll(src, 4096)
//
// Frames are parsed one at a time and interleaved into the caller's buffer;
// a frame that does not fit is kept for the next read. Samples are divided
// by 2^(bits-1) into [-1, 1).
//
// # Error Handling
//
// All errors match codecerr.ErrFormat:
//   - ErrNotFlacFile: the signature or STREAMINFO block is invalid
//   - ErrUnsupportedBitDepth: fewer than 4 or more than 32 bits
//   - ErrFrameData: a frame failed to parse or its subframes do not match
//     the stream's channel count
package flac
