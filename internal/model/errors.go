package model

import "errors"

// Common errors used across the application
var (
	// ErrInvalidSequence is returned when a point sequence fails validation
	ErrInvalidSequence = errors.New("invalid sequence")

	// ErrGameState is returned when the game state machine is misused
	ErrGameState = errors.New("invalid game state")

	// ErrResultNotFound is returned by storage when no result is cached for a sequence
	ErrResultNotFound = errors.New("result not found")

	// ErrResultCorrupt is returned by storage when a cached result cannot be decoded
	ErrResultCorrupt = errors.New("cached result is corrupt")
)
