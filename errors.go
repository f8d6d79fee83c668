package fxbench

import "errors"

// ErrUnknownMode is returned when a construction mode name is not recognized.
var ErrUnknownMode = errors.New("fxbench: unknown pipeline mode")
