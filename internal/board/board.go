// Package board holds the 8x8 grid of pieces and the unconditional move
// commit. It performs no legality checks: callers validate with the piece
// rules before calling Move.
package board

import (
	"fmt"

	"gameboard/internal/core"
	"gameboard/internal/piece"
)

// Snapshot is a full copy of board occupancy
type Snapshot [core.BoardSize][core.BoardSize]piece.Piece

type Board struct {
	squares Snapshot
	variant core.Variant
}

// New creates a board populated with the initial layout of the variant
func New(v core.Variant) *Board {
	b := &Board{variant: v}
	b.setup()
	return b
}

// Empty creates a board of the variant with no pieces placed
func Empty(v core.Variant) *Board {
	return &Board{variant: v}
}

func (b *Board) Variant() core.Variant {
	return b.variant
}

// Get returns the occupant of sq and whether the square is occupied
func (b *Board) Get(sq core.Square) (piece.Piece, bool, error) {
	if !sq.InBounds() {
		return piece.Piece{}, false, fmt.Errorf("get %v: %w", sq, core.ErrOutOfBounds)
	}
	p := b.squares[sq.Row][sq.Col]
	return p, !p.IsEmpty(), nil
}

// At returns the occupant of sq, the empty piece for empty or out-of-range squares
func (b *Board) At(sq core.Square) piece.Piece {
	if !sq.InBounds() {
		return piece.Piece{}
	}
	return b.squares[sq.Row][sq.Col]
}

func (b *Board) Set(sq core.Square, p piece.Piece) error {
	if !sq.InBounds() {
		return fmt.Errorf("set %v: %w", sq, core.ErrOutOfBounds)
	}
	b.squares[sq.Row][sq.Col] = p
	return nil
}

func (b *Board) Remove(sq core.Square) error {
	return b.Set(sq, piece.Piece{})
}

// Move relocates the piece on from to to, replacing any occupant, and crowns
// a checker that reaches its far row. Returns false when from is empty or
// either square is off the board.
func (b *Board) Move(from, to core.Square) bool {
	if !from.InBounds() || !to.InBounds() {
		return false
	}
	p := b.squares[from.Row][from.Col]
	if p.IsEmpty() {
		return false
	}

	b.squares[to.Row][to.Col] = p
	b.squares[from.Row][from.Col] = piece.Piece{}

	if p.Kind == piece.Checker && to.Row == p.Color.FarRow() {
		b.squares[to.Row][to.Col] = piece.New(piece.CrownedChecker, p.Color)
	}
	return true
}

// Snapshot returns a copy of the grid
func (b *Board) Snapshot() Snapshot {
	return b.squares
}

// Restore replaces the grid with a previously taken snapshot
func (b *Board) Restore(s Snapshot) {
	b.squares = s
}

// Count returns the number of occupied squares
func (b *Board) Count() int {
	n := 0
	for r := range b.squares {
		for _, p := range b.squares[r] {
			if !p.IsEmpty() {
				n++
			}
		}
	}
	return n
}
