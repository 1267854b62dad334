// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files using go-audio/wav.
//
// # Supported Formats
//
// Decoding:
//   - Integer PCM (format tag 1) and WAVE_FORMAT_EXTENSIBLE (0xFFFE)
//   - 8-bit unsigned, 16, 24 and 32-bit signed samples
//   - Any channel count and sample rate
//
// Encoding:
//   - Mono integer PCM at 8, 16, 24 or 32 bits
//   - WriteFile always writes 16 bits
//
// # Decoding WAV Files
//
// Decoder returns an audio.Source with interleaved samples scaled into
// [-1, 1):
//
//	f, err := os.Open("speech.wav")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
//
// go-audio seeks while parsing chunks. Readers that cannot seek are read
// into memory first. Signed samples are divided by 2^(bits-1); 8-bit
// samples are re-centred around 128 before scaling.
//
// ReadFile does the open, decode and drain in one step:
//
//	buf, err := wav.ReadFile("speech.wav")
//	// buf.Data, buf.Channels, buf.SampleRate
//
// # Writing WAV Files
//
//	if err := wav.WriteFile("restored.wav", samples, 44100); err != nil {
//	    return err
//	}
//
// Samples are clamped to [-1, 1] and rounded to the nearest integer. Encode
// writes to any io.WriteSeeker, since the RIFF sizes are patched in when the
// encoder closes. Empty input and non-positive rates are rejected before
// anything is written.
//
// # Error Handling
//
// Format errors (match codecerr.ErrFormat):
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrUnsupportedEncoding: float or compressed sample formats
//   - ErrUnsupportedBitDepth: depths other than 8, 16, 24 and 32
//   - ErrPCMData: the sample data could not be read
//
// Validation errors (match codecerr.ErrValidation):
//   - ErrNoSamples: nothing to write
//   - ErrInvalidSampleRate: rate is zero or negative
//
// File system failures in ReadFile and WriteFile come back as
// *codecerr.ResourceError, and errors.Is(err, fs.ErrNotExist) still works:
//
//	_, err := wav.ReadFile("missing.wav")
//	if errors.Is(err, fs.ErrNotExist) {
//	    fmt.Println("no such file")
//	}
package wav
