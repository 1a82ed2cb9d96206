package core

import "errors"

// Sentinel errors for the failure kinds of the engine.
// Use these with errors.Is() to check for specific failures.
var (
	// ErrMalformedMove indicates move text that does not name two board squares.
	ErrMalformedMove = errors.New("malformed move")

	// ErrEmptySquare indicates a move whose source square holds no piece.
	ErrEmptySquare = errors.New("no piece on source square")

	// ErrWrongTurn indicates a move of a piece whose color is not to move.
	ErrWrongTurn = errors.New("piece does not belong to the side to move")

	// ErrIllegalMove indicates a move that violates the piece's movement rule.
	ErrIllegalMove = errors.New("illegal move")

	// ErrOutOfBounds indicates board access outside the 8x8 grid.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrNothingToUndo indicates an undo with an empty history.
	ErrNothingToUndo = errors.New("nothing to undo")

	ErrGameNotFound = errors.New("game not found")

	// ErrNoFEN indicates a board holding pieces FEN cannot describe.
	ErrNoFEN = errors.New("board has no FEN representation")

	ErrInvalidLayout = errors.New("invalid board layout")
)
