// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF input with github.com/go-audio/aiff.
//
// # Supported Formats
//
//   - AIFF with signed big-endian PCM at 8, 16, 24 or 32 bits
//   - Any channel count and sample rate
//
// AIFF-C compressed variants are not handled.
//
// # Decoding AIFF Files
//
//	f, err := os.Open("speech.aiff")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.ReadAll(src, 4096)
//
// Samples are signed at every bit depth and are divided by 2^(bits-1), so a
// 16-bit value of 16384 becomes 0.5.
//
// go-audio seeks between chunks. Readers that cannot seek are read into
// memory first, so very large streams should be passed as files.
//
// # Error Handling
//
// All errors match codecerr.ErrFormat:
//   - ErrNotAiffFile: the FORM/AIFF header is missing or invalid
//   - ErrUnsupportedBitDepth: depths other than 8, 16, 24 and 32
//   - ErrUnsupportedAiffLayout: the COMM chunk reports no channels
//   - ErrPCMData: the sample data could not be read
//
//	if errors.Is(err, codecerr.ErrFormat) {
//	    fmt.Println("unreadable AIFF:", err)
//	}
package aiff
