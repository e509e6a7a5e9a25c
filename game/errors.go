package game

import "errors"

var (
	// ErrOutOfBounds is returned when a position lies outside the 8x8 grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrIllegalMove is returned when a move is not among the legal moves of
	// the side to move.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvariantViolation marks a board or argument that breaks the board
	// construction contract. Inside the search it is raised with panic.
	ErrInvariantViolation = errors.New("invariant violation")
	ErrInvalidFEN         = errors.New("invalid fen")
	ErrInvalidMove        = errors.New("invalid move notation")
)
