package render

import (
	"errors"
	"fmt"
)

// Sentinel errors for rendering failures.
var (
	ErrNoPages   = errors.New("render: document has no pages")
	ErrPageRange = errors.New("render: page out of range")
	ErrNoFont    = errors.New("render: font unavailable")
)

// Error records the canvas operation that failed.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("render.%s: unknown error", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}
