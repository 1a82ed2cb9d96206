package game

import (
	"fmt"

	"gameboard/internal/board"
	"gameboard/internal/core"
)

// Game sequences turns over one board and keeps a snapshot per accepted move
// for undo. A Game is not safe for concurrent use.
type Game struct {
	board   *board.Board
	turn    core.Color
	history []board.Snapshot
	played  []Played
}

// Played is an accepted move with the color that made it. Undo leaves the
// turn alone, so the mover cannot be derived from a move's position.
type Played struct {
	Move  string
	Color core.Color
}

// New starts a game of the variant with WHITE to move
func New(v core.Variant) *Game {
	return NewFromBoard(board.New(v), core.ColorWhite)
}

// NewFromBoard starts a game on a prepared board
func NewFromBoard(b *board.Board, turn core.Color) *Game {
	return &Game{
		board: b,
		turn:  turn,
	}
}

// SubmitMove validates and applies a move given as "<from> <to>", e.g. "e2 e4".
// A rejected move leaves the game unchanged and returns a *MoveError.
func (g *Game) SubmitMove(text string) error {
	m, err := ParseMove(text)
	if err != nil {
		return &MoveError{Move: text, Err: err}
	}

	p, ok, err := g.board.Get(m.From)
	if err != nil {
		return &MoveError{Move: text, Err: err}
	}
	if !ok {
		return &MoveError{Move: text, Err: fmt.Errorf("%w at %v", core.ErrEmptySquare, m.From)}
	}
	if p.Color != g.turn {
		return &MoveError{Move: text, Err: core.ErrWrongTurn}
	}

	verdict := p.Check(m.From, m.To, g.board)
	if !verdict.Legal {
		return &MoveError{Move: text, Err: fmt.Errorf("%w: %s %v-%v", core.ErrIllegalMove, p.Kind, m.From, m.To)}
	}

	before := g.board.Snapshot()
	if verdict.Jumped != nil {
		if err := g.board.Remove(*verdict.Jumped); err != nil {
			g.board.Restore(before)
			return &MoveError{Move: text, Err: err}
		}
	}
	if !g.board.Move(m.From, m.To) {
		g.board.Restore(before)
		return &MoveError{Move: text, Err: fmt.Errorf("%w at %v", core.ErrEmptySquare, m.From)}
	}

	g.history = append(g.history, before)
	g.played = append(g.played, Played{Move: m.String(), Color: p.Color})
	g.turn = core.OppositeColor(g.turn)

	return nil
}

// Undo restores the board as it was before the latest accepted move. The
// side to move is left as it is.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return core.ErrNothingToUndo
	}

	last := len(g.history) - 1
	g.board.Restore(g.history[last])
	g.history = g.history[:last]
	g.played = g.played[:last]
	return nil
}

func (g *Game) Turn() core.Color {
	return g.turn
}

func (g *Game) State() core.State {
	return core.StateFor(g.turn)
}

func (g *Game) Variant() core.Variant {
	return g.board.Variant()
}

// Board returns the live board. Callers must not modify it.
func (g *Game) Board() *board.Board {
	return g.board
}

// Moves returns the text of the accepted moves still on the history stack
func (g *Game) Moves() []string {
	moves := make([]string, len(g.played))
	for i, p := range g.played {
		moves[i] = p.Move
	}
	return moves
}

// Played returns the accepted moves still on the history stack with their movers
func (g *Game) Played() []Played {
	played := make([]Played, len(g.played))
	copy(played, g.played)
	return played
}

// HistoryLen returns the number of snapshots available to Undo
func (g *Game) HistoryLen() int {
	return len(g.history)
}
