// SPDX-License-Identifier: EPL-2.0

// Package audio streams PCM between decoders and the codec pipeline.
//
// # Core Interface
//
// Everything is built around Source, a pull-based interleaved float64
// stream:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    Close() error
//	}
//
// ReadSamples counts values, not frames. Samples are nominally in [-1, 1].
// Sources return io.EOF once drained, possibly together with the final
// samples.
//
// # Processing Pipeline
//
// Decoders in the formats packages produce a Source; MonoMixer and
// Resampler wrap one and are themselves Sources, so they chain:
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	r, err := audio.NewResampler(audio.NewMonoMixer(src), 16000)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	buf, err := audio.ReadAll(r, 4096)
//
// Closing a wrapper closes the Source it wraps.
//
// # Mono Mixing
//
// MonoMixer averages the channels of each frame. A mono Source passes
// through unchanged.
//
// # Resampling
//
// Resampler converts between rates with Catmull-Rom cubic interpolation
// over a four-frame window. When downsampling, a one-pole low-pass runs
// ahead of the interpolation to reduce aliasing. The output has
// ceil(frames * dstRate / srcRate) frames:
//
//	r, _ := audio.NewResampler(src48k, 16000)
//	// 48000 input frames become 16000 output frames
//
// # Buffers
//
// ReadAll drains a Source into a Buffer, and NewBufferSource turns a Buffer
// back into a Source, which is how tests and in-memory callers feed the
// pipeline.
//
// # Format Registry
//
// A Registry maps file extensions to decoders. Lookups ignore case and a
// leading dot, so ".WAV" and "wav" find the same decoder:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get(filepath.Ext(path))
//
// A Registry is safe for concurrent use.
//
// # Error Handling
//
//   - ErrInvalidRate: a resampler target or source rate is not positive
//   - ErrInvalidChannels: a Source reports no channels
//
// Both match codecerr.ErrValidation.
package audio
