// SPDX-License-Identifier: EPL-2.0

package container

import "github.com/ik5/lofipcm/codecerr"

var (
	ErrTruncatedHeader  = codecerr.New(codecerr.ErrFormat, "container shorter than header")
	ErrInvalidHeader    = codecerr.New(codecerr.ErrFormat, "invalid container header")
	ErrSampleOutOfRange = codecerr.New(codecerr.ErrValidation, "sample does not fit in int8")
)
