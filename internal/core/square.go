package core

import "fmt"

// BoardSize is the number of rows and columns of every board
const BoardSize = 8

// Square is a (row, col) board coordinate. Row 0 is BLACK's back rank.
type Square struct {
	Row int
	Col int
}

func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// String returns the algebraic name of the square, e.g. "e2"
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%c", 'a'+s.Col, '8'-s.Row)
}

// ParseSquare converts algebraic notation into board coordinates using
// row = 8 - rank and col = file - 'a'.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: square %q must be a file and a rank", ErrMalformedMove, s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' {
		return Square{}, fmt.Errorf("%w: file %q outside a-h", ErrMalformedMove, file)
	}
	if rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%w: rank %q outside 1-8", ErrMalformedMove, rank)
	}
	return Square{Row: 8 - int(rank-'0'), Col: int(file - 'a')}, nil
}
