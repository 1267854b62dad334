// SPDX-License-Identifier: EPL-2.0

// Package codec composes the dsp primitives into the compress and restore
// pipelines.
//
// Compress turns mono float samples into a Record:
//
//	normalize -> pre-emphasis -> adaptive downsample -> quantize
//
// and Restore reverses it approximately:
//
//	dequantize -> cubic upsample -> spectral copy -> de-emphasis -> normalize
//
// Both are deterministic functions of their input and Config. A failing
// stage is reported as *codecerr.StageError carrying the stage name; the
// underlying sentinel stays reachable with errors.Is.
//
// Config holds every tunable and can be loaded from YAML with LoadConfig.
// DefaultConfig matches the fixed parameters of the format: factor 2,
// 8 bits, raw dequantization.
package codec
