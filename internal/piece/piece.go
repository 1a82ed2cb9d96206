// Package piece defines the pieces of all supported variants and their
// movement rules.
package piece

import "gameboard/internal/core"

// Kind identifies a piece type. The zero Kind marks an empty cell.
type Kind int

const (
	None Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	King
	Queen
	Hedgehog
	Trooper
	Accelerator
	Checker
	CrownedChecker
)

func (k Kind) String() string {
	names := []string{"None", "Pawn", "Rook", "Knight", "Bishop", "King", "Queen",
		"Hedgehog", "Trooper", "Accelerator", "Checker", "CrownedChecker"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// glyphs holds the display letter of each kind for WHITE and BLACK
var glyphs = map[Kind][2]byte{
	Pawn:           {'P', 'p'},
	Rook:           {'R', 'r'},
	Knight:         {'N', 'n'},
	Bishop:         {'B', 'b'},
	King:           {'K', 'k'},
	Queen:          {'Q', 'q'},
	Hedgehog:       {'X', 'x'},
	Trooper:        {'T', 't'},
	Accelerator:    {'^', 'v'},
	Checker:        {'C', 'c'},
	CrownedChecker: {'W', 'w'},
}

// Piece is one occupant of a square. Pieces are values: a promotion replaces
// the cell's Piece instead of changing it.
type Piece struct {
	Kind  Kind
	Color core.Color
}

// New returns a piece of the given kind and color
func New(k Kind, c core.Color) Piece {
	return Piece{Kind: k, Color: c}
}

func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// Letter returns the one-character label, '.' for an empty cell
func (p Piece) Letter() byte {
	g, ok := glyphs[p.Kind]
	if !ok {
		return '.'
	}
	if p.Color == core.ColorBlack {
		return g[1]
	}
	return g[0]
}

func (p Piece) String() string {
	return string(p.Letter())
}

// FromLetter is the inverse of Letter. '.' decodes to the empty piece.
func FromLetter(ch byte) (Piece, bool) {
	if ch == '.' {
		return Piece{}, true
	}
	for k, g := range glyphs {
		switch ch {
		case g[0]:
			return New(k, core.ColorWhite), true
		case g[1]:
			return New(k, core.ColorBlack), true
		}
	}
	return Piece{}, false
}
