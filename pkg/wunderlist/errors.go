package wunderlist

import "errors"

var (
	// ErrInvalidConfig is returned by New when credentials are missing.
	ErrInvalidConfig = errors.New("wunderlist: invalid config")
	// ErrUnknownOperation is returned when an operation name is not in the catalog.
	ErrUnknownOperation = errors.New("wunderlist: unknown operation")
	// ErrMissingArgument is returned when a path, query or body placeholder has no value.
	ErrMissingArgument = errors.New("wunderlist: missing argument")
)
