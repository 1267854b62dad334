// SPDX-License-Identifier: EPL-2.0

// Package lofipcm is a small lossy speech codec. Audio is normalized,
// pre-emphasized, adaptively decimated and quantized to a few bits per
// sample, then stored in a 12-byte-header binary container. Restoration
// interpolates the samples back up, synthesizes the missing top octave by
// mirroring the spectrum and undoes the emphasis.
//
// # Supported Formats
//
// Input formats are picked by file extension from DefaultRegistry:
//   - WAV (.wav, .wave) via formats/wav
//   - MP3 (.mp3) via formats/mp3
//   - Ogg Vorbis (.ogg, .oga) via formats/vorbis
//   - AIFF (.aiff, .aif) via formats/aiff
//   - FLAC (.flac) via formats/flac
//
// Restored audio is always written as mono 16-bit WAV.
//
// # Quick Start
//
//	cfg := codec.DefaultConfig()
//
//	rec, err := lofipcm.CompressFile("speech.wav", "compressed.bin", cfg)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(rec.SampleRate, rec.BitDepth, len(rec.Samples))
//
//	n, rate, err := lofipcm.RestoreFile("compressed.bin", "restored.wav", cfg)
//
// CompressFileWith does the same with a caller-supplied audio.Registry.
//
// # Batch Compression
//
// CompressBatch compresses several files with a bounded number in flight.
// Each input becomes <name>.bin in the output directory, and two inputs that
// would map to the same output are rejected before any work starts:
//
//	outs, err := lofipcm.CompressBatch(ctx, []string{"a.wav", "b.mp3"}, "out", cfg, 4)
//	// outs == []string{"out/a.bin", "out/b.bin"}
//
// The first failure cancels files that have not started yet.
//
// # Configuration
//
// codec.LoadConfig reads a YAML file over the defaults; unknown keys are
// rejected:
//
//	target_rms: 0.07
//	downsample_factor: 2
//	bit_depth: 8
//	dequantize: raw
//
// # Error Handling
//
// Every error carries a kind from package codecerr, so callers can sort
// failures without knowing each sentinel:
//
//	_, err := lofipcm.CompressFile("voice.opus", "voice.bin", cfg)
//	switch codecerr.KindOf(err) {
//	case codecerr.ErrFormat:     // unsupported or corrupt input
//	case codecerr.ErrValidation: // bad parameters
//	case codecerr.ErrResource:   // file system
//	}
//
// Pipeline failures are wrapped in *codecerr.StageError naming the step that
// failed.
//
// # Subpackages
//
//   - codec: Config, Record and the Compress / Restore pipelines
//   - container: the .bin layout
//   - dsp: the individual transforms
//   - audio: streaming sources, mono mixing and resampling
//   - formats/...: decoders, and the WAV writer
//   - codecerr: error kinds shared by all of the above
package lofipcm
