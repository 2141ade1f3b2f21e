package nif

import (
	stderrors "errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

// ErrInvalidArgument marks caller mistakes caught before any I/O happens.
var ErrInvalidArgument = stderrors.New("nif: invalid argument")

var errTransient = crerr.New("nif transient failure")

// FetchExhaustedError is returned once every retry attempt has failed. It
// carries the attempt count and wraps the last transport error.
type FetchExhaustedError struct {
	Endpoint string
	Attempts int
	Err      error
}

func (e *FetchExhaustedError) Error() string {
	return fmt.Sprintf("fetch %s exhausted after %d attempts: %v", e.Endpoint, e.Attempts, e.Err)
}

func (e *FetchExhaustedError) Unwrap() error {
	return e.Err
}
