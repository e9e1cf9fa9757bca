package appplatform

import "errors"

// Errors returned by appplatform constructors and the remote manager.
var (
	// ErrNoManager indicates no endpoint manager handle was supplied.
	ErrNoManager = errors.New("appplatform: no endpoint manager")

	// ErrNoConn indicates no connection to the host runtime was supplied.
	ErrNoConn = errors.New("appplatform: no host connection")

	// ErrClosed indicates the remote manager has been closed.
	ErrClosed = errors.New("appplatform: manager closed")

	// ErrHostFailure indicates the host runtime reported a failure while
	// reading the attribute.
	ErrHostFailure = errors.New("appplatform: host read failed")

	// ErrFrameTooLarge indicates a wire frame exceeded the size limit.
	ErrFrameTooLarge = errors.New("appplatform: frame exceeds size limit")

	// ErrShortFrame indicates a truncated or empty wire frame.
	ErrShortFrame = errors.New("appplatform: truncated frame")

	// ErrInvalidStatus indicates an unknown response status byte.
	ErrInvalidStatus = errors.New("appplatform: invalid response status")
)
