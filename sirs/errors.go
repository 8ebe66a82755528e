package sirs

import "errors"

var (
	// ErrInvalidParameter is returned when a run is configured with values
	// outside their allowed range. No step is executed.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrStateInvariant means a cell left the defined tag set after a step.
	// It indicates a bug in the engine and the run is stopped.
	ErrStateInvariant = errors.New("state invariant violation")
)
