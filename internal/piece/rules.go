package piece

import "gameboard/internal/core"

// Occupancy is the read-only board view the movement rules consult
type Occupancy interface {
	At(sq core.Square) Piece
}

// Verdict is the outcome of a legality check
type Verdict struct {
	Legal bool
	// Jumped names the square of an enemy piece a checkers jump removes
	Jumped *core.Square
}

var illegal = Verdict{}

func legal(ok bool) Verdict {
	return Verdict{Legal: ok}
}

// IsMoveCorrect reports whether p may move from one square to another on occ
func (p Piece) IsMoveCorrect(from, to core.Square, occ Occupancy) bool {
	return p.Check(from, to, occ).Legal
}

// Check evaluates the movement rule of p's kind. It never modifies the board:
// a checkers jump reports the captured square in the verdict and leaves the
// removal to the caller.
func (p Piece) Check(from, to core.Square, occ Occupancy) Verdict {
	if p.IsEmpty() || !from.InBounds() || !to.InBounds() {
		return illegal
	}

	target := occ.At(to)
	if !target.IsEmpty() && target.Color == p.Color {
		return illegal
	}

	dr := to.Row - from.Row
	dc := to.Col - from.Col

	switch p.Kind {
	case Pawn:
		return legal(p.pawnMove(from, dr, dc, target))
	case Rook:
		return legal(straight(occ, from, to, dr, dc))
	case Knight:
		return legal((abs(dr) == 1 && abs(dc) == 2) || (abs(dr) == 2 && abs(dc) == 1))
	case Bishop:
		return legal(diagonal(occ, from, to, dr, dc))
	case Queen:
		return legal(straight(occ, from, to, dr, dc) || diagonal(occ, from, to, dr, dc))
	case King:
		return legal(abs(dr) <= 1 && abs(dc) <= 1)
	case Hedgehog:
		return legal(abs(dr) == 1 && abs(dc) == 1)
	case Trooper:
		return legal(p.trooperMove(dr, dc, target))
	case Accelerator:
		return legal(dr == 0 && abs(dc) >= 1 && abs(dc) <= 3)
	case Checker:
		return p.checkerMove(from, to, dr, dc, target, occ)
	case CrownedChecker:
		return legal(diagonal(occ, from, to, dr, dc))
	}
	return illegal
}

func (p Piece) pawnMove(from core.Square, dr, dc int, target Piece) bool {
	dir := p.Color.Direction()
	switch {
	case dc == 0 && dr == dir:
		return target.IsEmpty()
	case dc == 0 && dr == 2*dir:
		// Intermediate square is not checked
		return from.Row == p.Color.HomeRow() && target.IsEmpty()
	case abs(dc) == 1 && dr == dir:
		return !target.IsEmpty()
	}
	return false
}

func (p Piece) trooperMove(dr, dc int, target Piece) bool {
	if dr != p.Color.Direction() || abs(dc) > 1 {
		return false
	}
	if target.IsEmpty() {
		return true
	}
	return abs(dc) == 1
}

func (p Piece) checkerMove(from, to core.Square, dr, dc int, target Piece, occ Occupancy) Verdict {
	dir := p.Color.Direction()
	if !target.IsEmpty() {
		return illegal
	}

	if abs(dc) == 1 && dr == dir {
		return legal(true)
	}

	if abs(dc) == 2 && dr == 2*dir {
		mid := core.Square{Row: from.Row + dir, Col: (from.Col + to.Col) / 2}
		enemy := occ.At(mid)
		if !enemy.IsEmpty() && enemy.Color != p.Color {
			return Verdict{Legal: true, Jumped: &mid}
		}
	}
	return illegal
}
