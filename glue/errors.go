package glue

import "errors"

var (
	ErrInvalidDescriptor = errors.New("invalid function descriptor")
	ErrArgumentCount     = errors.New("argument count mismatch")
	ErrCancelled         = errors.New("runnable cancelled")
	ErrBusy              = errors.New("runnable already running")
)
