package board

import (
	"fmt"

	"gameboard/internal/core"
	"gameboard/internal/piece"

	"github.com/notnil/chess"
)

var fenPieces = map[piece.Kind][2]chess.Piece{
	piece.Pawn:   {chess.WhitePawn, chess.BlackPawn},
	piece.Rook:   {chess.WhiteRook, chess.BlackRook},
	piece.Knight: {chess.WhiteKnight, chess.BlackKnight},
	piece.Bishop: {chess.WhiteBishop, chess.BlackBishop},
	piece.King:   {chess.WhiteKing, chess.BlackKing},
	piece.Queen:  {chess.WhiteQueen, chess.BlackQueen},
}

// FEN returns the piece placement field of the board in FEN notation. Only
// boards holding standard chess pieces have one.
func (b *Board) FEN() (string, error) {
	placement := make(map[chess.Square]chess.Piece)
	for r := 0; r < core.BoardSize; r++ {
		for c := 0; c < core.BoardSize; c++ {
			p := b.squares[r][c]
			if p.IsEmpty() {
				continue
			}
			pair, ok := fenPieces[p.Kind]
			if !ok {
				return "", fmt.Errorf("%w: %s at %v", core.ErrNoFEN, p.Kind, core.Square{Row: r, Col: c})
			}
			cp := pair[0]
			if p.Color == core.ColorBlack {
				cp = pair[1]
			}
			placement[chess.NewSquare(chess.File(c), chess.Rank(core.BoardSize-1-r))] = cp
		}
	}
	return chess.NewBoard(placement).String(), nil
}
