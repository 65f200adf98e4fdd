package server

import "errors"

var (
	// ErrServerAlreadyRunning is returned by Start while a previous Start
	// is still serving.
	ErrServerAlreadyRunning = errors.New("server is already running")

	// ErrMissingAddress is returned by NewFromConfig for an empty Addr.
	ErrMissingAddress = errors.New("server address is required")
)
