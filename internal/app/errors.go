package app

import "errors"

// ErrInitialization indicates an initialization failure.
var ErrInitialization = errors.New("initialization failed")
