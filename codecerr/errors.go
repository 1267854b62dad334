// SPDX-License-Identifier: EPL-2.0

package codecerr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrFormat     = errors.New("format error")
	ErrResource   = errors.New("resource error")
	ErrInternal   = errors.New("internal error")
)

var kinds = []error{ErrValidation, ErrFormat, ErrResource}

// kindError is a sentinel that also matches its kind with errors.Is.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// New returns a sentinel error with message msg belonging to kind.
func New(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// KindOf reports the kind carried by err, or ErrInternal when err has none.
// A nil err has no kind and returns nil.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrInternal
}

// StageError reports which pipeline stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Is matches ErrInternal only when the cause has no other kind.
func (e *StageError) Is(target error) bool {
	return target == ErrInternal && KindOf(e.Err) == ErrInternal
}

// ResourceError records a failed file or library operation on a path.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

func (e *ResourceError) Is(target error) bool { return target == ErrResource }
