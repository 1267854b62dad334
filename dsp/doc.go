// SPDX-License-Identifier: EPL-2.0

// Package dsp implements the transform stages of the lofipcm codec.
//
// Encode side, in pipeline order:
//   - MixDown: average multi-channel frames into one channel
//   - Normalize: RMS gain normalization with a silence floor and a gain ceiling
//   - PreEmphasize: first-order high-pass FIR
//   - AdaptiveDownsample: decimation that slows down around transients
//   - ReduceBitDepth: clamp, scale and round to signed integers
//
// Decode side, in pipeline order:
//   - Dequantize: turn integers back into float samples (raw or unit scaled)
//   - Upsample: Catmull-Rom interpolation by an integer factor
//   - SpectralCopy: FFT based bandwidth extension by spectral mirroring
//   - DeEmphasize: recursive inverse of PreEmphasize
//   - Normalize
//
// Every function works on in-memory []float64 buffers, keeps no state between
// calls and never modifies its input. Functions that can reject their input
// return errors built on codecerr.ErrValidation.
package dsp
