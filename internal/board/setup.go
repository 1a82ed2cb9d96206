package board

import (
	"gameboard/internal/core"
	"gameboard/internal/piece"
)

var (
	chessBackRank = [core.BoardSize]piece.Kind{
		piece.Rook, piece.Knight, piece.Bishop, piece.King,
		piece.Queen, piece.Bishop, piece.Knight, piece.Rook,
	}
	spaceBackRank = [core.BoardSize]piece.Kind{
		piece.Rook, piece.Knight, piece.Hedgehog, piece.King,
		piece.Queen, piece.Hedgehog, piece.Knight, piece.Rook,
	}
)

// Accelerator start squares, asymmetric between the sides
var (
	whiteAcceleratorSquare = core.Square{Row: 5, Col: 1}
	blackAcceleratorSquare = core.Square{Row: 2, Col: 6}
)

func (b *Board) setup() {
	switch b.variant {
	case core.VariantChess:
		b.placeArmy(chessBackRank, piece.Pawn)
	case core.VariantSpaceChess:
		b.placeArmy(spaceBackRank, piece.Trooper)
		b.place(whiteAcceleratorSquare, piece.New(piece.Accelerator, core.ColorWhite))
		b.place(blackAcceleratorSquare, piece.New(piece.Accelerator, core.ColorBlack))
	case core.VariantCheckers:
		b.placeCheckers()
	}
}

func (b *Board) placeArmy(backRank [core.BoardSize]piece.Kind, front piece.Kind) {
	for col, kind := range backRank {
		b.squares[0][col] = piece.New(kind, core.ColorBlack)
		b.squares[7][col] = piece.New(kind, core.ColorWhite)
		b.squares[1][col] = piece.New(front, core.ColorBlack)
		b.squares[6][col] = piece.New(front, core.ColorWhite)
	}
}

// placeCheckers fills the dark squares: even columns on rows 1, 5, 7 and odd
// columns on rows 0, 2, 6
func (b *Board) placeCheckers() {
	for col := 0; col < core.BoardSize; col += 2 {
		b.squares[1][col] = piece.New(piece.Checker, core.ColorBlack)
		b.squares[5][col] = piece.New(piece.Checker, core.ColorWhite)
		b.squares[7][col] = piece.New(piece.Checker, core.ColorWhite)
	}
	for col := 1; col < core.BoardSize; col += 2 {
		b.squares[0][col] = piece.New(piece.Checker, core.ColorBlack)
		b.squares[2][col] = piece.New(piece.Checker, core.ColorBlack)
		b.squares[6][col] = piece.New(piece.Checker, core.ColorWhite)
	}
}

func (b *Board) place(sq core.Square, p piece.Piece) {
	b.squares[sq.Row][sq.Col] = p
}
