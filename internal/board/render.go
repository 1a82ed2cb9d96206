package board

import (
	"fmt"
	"strings"

	"gameboard/internal/core"
	"gameboard/internal/piece"
)

const fileLabels = "  A B C D E F G H"

// Letters returns one string of cell glyphs per row, row 0 first
func (b *Board) Letters() [core.BoardSize]string {
	var rows [core.BoardSize]string
	for r := 0; r < core.BoardSize; r++ {
		var sb strings.Builder
		for c := 0; c < core.BoardSize; c++ {
			sb.WriteByte(b.squares[r][c].Letter())
		}
		rows[r] = sb.String()
	}
	return rows
}

// ToASCII creates an ASCII representation of the board
func (b *Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString(fileLabels + "\n")

	for r := 0; r < core.BoardSize; r++ {
		sb.WriteString(fmt.Sprintf("%d ", 8-r))
		for c := 0; c < core.BoardSize; c++ {
			sb.WriteString(fmt.Sprintf("%c ", b.squares[r][c].Letter()))
		}
		sb.WriteString(fmt.Sprintf(" %d\n", 8-r))
	}
	sb.WriteString(fileLabels)

	return sb.String()
}

// Layout encodes the grid as 64 row-major cell glyphs
func (b *Board) Layout() string {
	rows := b.Letters()
	return strings.Join(rows[:], "")
}

// ParseLayout builds a board of the given variant from a Layout string
func ParseLayout(v core.Variant, layout string) (*Board, error) {
	if len(layout) != core.BoardSize*core.BoardSize {
		return nil, fmt.Errorf("%w: expected 64 cells, got %d", core.ErrInvalidLayout, len(layout))
	}

	b := Empty(v)
	for i := 0; i < len(layout); i++ {
		p, ok := piece.FromLetter(layout[i])
		if !ok {
			return nil, fmt.Errorf("%w: unknown piece %q at %v", core.ErrInvalidLayout,
				layout[i], core.Square{Row: i / 8, Col: i % 8})
		}
		b.squares[i/8][i%8] = p
	}
	return b, nil
}

// ParseRows builds a board from eight row strings, row 0 first
func ParseRows(v core.Variant, rows ...string) (*Board, error) {
	if len(rows) != core.BoardSize {
		return nil, fmt.Errorf("%w: expected 8 rows, got %d", core.ErrInvalidLayout, len(rows))
	}
	return ParseLayout(v, strings.Join(rows, ""))
}
