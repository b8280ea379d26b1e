package scrub

import "errors"

var (
	// ErrLoadFailed wraps the cause when media could not be loaded. It is terminal.
	ErrLoadFailed = errors.New("media load failed")
	// ErrAlreadyOpen is returned by Open when a source was already opened.
	ErrAlreadyOpen = errors.New("controller already opened a source")
	// ErrDisposed is returned by Open after Dispose.
	ErrDisposed = errors.New("controller disposed")
)
