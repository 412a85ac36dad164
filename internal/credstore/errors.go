package credstore

import (
	"errors"
	"fmt"
)

// ErrLocate is returned when no store path can be determined.
var ErrLocate = errors.New("failed to locate the .git-credentials file")

// OpenError reports a store that exists but could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open the .git-credentials file %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ReadError reports an I/O failure while scanning the store.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read line from credential store: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// InvalidURLError reports a store line that is not an absolute URL.
type InvalidURLError struct {
	Input string
	Err   error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("failed to parse URL %q: %v", e.Input, e.Err)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }
