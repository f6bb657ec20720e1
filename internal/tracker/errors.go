package tracker

import "errors"

// Engine errors. Every operation returns one of these (wrapped with context)
// instead of terminating; the CLI boundary decides how to report them.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyExists   = errors.New("habit already exists")
	ErrNotFound        = errors.New("habit not found")
)
