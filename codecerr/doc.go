// SPDX-License-Identifier: EPL-2.0

// Package codecerr defines the error kinds shared by every lofipcm package.
//
// Four kinds exist:
//   - ErrValidation: the caller passed something it can fix (empty buffer,
//     non-positive rate or factor, bit depth out of range)
//   - ErrFormat: a container or audio file is malformed or truncated
//   - ErrResource: a file could not be opened, read or written
//   - ErrInternal: anything else escaping a pipeline stage
//
// Packages declare their own sentinels with New so callers can match either
// the exact condition or its kind:
//
//	if errors.Is(err, dsp.ErrInsufficientSamples) { ... }
//	if errors.Is(err, codecerr.ErrValidation) { ... }
package codecerr
