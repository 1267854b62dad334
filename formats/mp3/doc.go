// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 input with github.com/hajimehoshi/go-mp3.
//
// # Supported Formats
//
//   - MPEG-1 and MPEG-2 Layer III, mono or stereo
//   - Any sample rate the library accepts (32, 44.1 and 48 kHz and the
//     MPEG-2 halves)
//
// go-mp3 always emits 16-bit little-endian stereo, so the returned
// audio.Source reports two channels even for mono files.
//
// # Decoding MP3 Files
//
//	f, err := os.Open("speech.mp3")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	mono := audio.NewMonoMixer(src)
//	buf, err := audio.ReadAll(mono, 4096)
//
// Samples are divided by 32768, so they fall in [-1, 1). Only whole frames
// are returned; a trailing partial frame at the end of the stream is
// dropped.
//
// # Error Handling
//
// Both errors match codecerr.ErrFormat:
//   - ErrNotMP3File: go-mp3 could not find a valid header
//   - ErrFrameData: a frame failed to decode mid-stream
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if errors.Is(err, mp3.ErrNotMP3File) {
//	    fmt.Println("not an MP3 file")
//	}
package mp3
