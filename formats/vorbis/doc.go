// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis input with github.com/jfreymuth/oggvorbis.
//
// # Supported Formats
//
//   - Ogg-encapsulated Vorbis I streams
//   - Any channel count and sample rate
//
// # Decoding Ogg Files
//
//	f, err := os.Open("speech.ogg")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf := make([]float64, 4096)
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// The returned audio.Source keeps the stream's channel count and rate.
// oggvorbis already clamps samples to [-1, 1], so they are passed through
// unchanged. Reads return whole frames only; buffers shorter than one frame
// read nothing.
//
// # Error Handling
//
// Both errors match codecerr.ErrFormat:
//   - ErrNotVorbisFile: the Ogg pages or Vorbis headers are invalid
//   - ErrPacketData: an audio packet failed to decode
package vorbis
