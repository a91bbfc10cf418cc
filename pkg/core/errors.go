package core

import "errors"

var (
	// ErrInvalidSize is returned when a grid dimension is not positive.
	ErrInvalidSize = errors.New("grid dimensions must be positive")
	// ErrInvalidCellSize is returned when the world-space cell size is not positive.
	ErrInvalidCellSize = errors.New("cell size must be positive")
)
