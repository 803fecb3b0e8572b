package anf

import "errors"

var (
	// ErrOutOfDomain is returned when a packed rule value has bits set at or
	// above position 2^n; no Boolean function of n variables has such a table.
	ErrOutOfDomain = errors.New("rule value is not less than 2^(2^n)")

	// ErrInsufficientCapacity is returned when the unsigned type cannot hold
	// 2^n bits.
	ErrInsufficientCapacity = errors.New("unsigned type is too narrow to hold a 2^n bit truth table")

	// ErrInvalidLength is returned when a truth table's length is not an
	// exact power of two.
	ErrInvalidLength = errors.New("truth table length is not a power of two")
)
