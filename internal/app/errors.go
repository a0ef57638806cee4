package app

import "errors"

// Sentinel errors for common application errors
var (
	ErrNotFound        = errors.New("candidate not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotInitialized  = errors.New("application not initialized")
)
