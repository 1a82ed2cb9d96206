package game

import (
	"fmt"
	"strings"

	"gameboard/internal/core"
)

// Move is a parsed move request
type Move struct {
	From core.Square
	To   core.Square
}

func (m Move) String() string {
	return m.From.String() + " " + m.To.String()
}

// ParseMove reads "<file><rank> <file><rank>" into board coordinates
func ParseMove(text string) (Move, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("%w: expected two squares, got %d fields", core.ErrMalformedMove, len(fields))
	}

	from, err := core.ParseSquare(fields[0])
	if err != nil {
		return Move{}, err
	}
	to, err := core.ParseSquare(fields[1])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

// MoveError wraps a rejected move with the text that was submitted
type MoveError struct {
	Move string
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %q: %v", e.Move, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
