// SPDX-License-Identifier: EPL-2.0

package lofipcm

import "github.com/ik5/lofipcm/codecerr"

var (
	ErrUnsupportedFormat = codecerr.New(codecerr.ErrFormat, "unsupported input format")
	ErrDuplicateOutput   = codecerr.New(codecerr.ErrValidation, "inputs map to the same output file")
	ErrNoInputs          = codecerr.New(codecerr.ErrValidation, "no input files")
)
