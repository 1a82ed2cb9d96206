package core

import "strings"

type Color byte

const (
	ColorWhite Color = 'w'
	ColorBlack Color = 'b'
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "w"
	case ColorBlack:
		return "b"
	default:
		return "-"
	}
}

// Name returns the human readable color name
func (c Color) Name() string {
	if c == ColorWhite {
		return "White"
	}
	return "Black"
}

// Direction is the row delta of a forward step: WHITE moves toward row 0
func (c Color) Direction() int {
	if c == ColorWhite {
		return -1
	}
	return 1
}

// HomeRow is the row a pawn may double-step from
func (c Color) HomeRow() int {
	if c == ColorWhite {
		return 6
	}
	return 1
}

// FarRow is the row where a checker gets crowned
func (c Color) FarRow() int {
	if c == ColorWhite {
		return 0
	}
	return 7
}

func OppositeColor(c Color) Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// ParseColor accepts "w"/"b" and the full names
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "w", "white":
		return ColorWhite, true
	case "b", "black":
		return ColorBlack, true
	}
	return 0, false
}

type Variant int

const (
	VariantEmpty Variant = iota // No pieces placed
	VariantChess
	VariantCheckers
	VariantSpaceChess
)

func (v Variant) String() string {
	switch v {
	case VariantChess:
		return "chess"
	case VariantCheckers:
		return "checkers"
	case VariantSpaceChess:
		return "spacechess"
	default:
		return "empty"
	}
}

// ParseVariant maps a selector name to a Variant. Unknown names fall back to
// VariantEmpty, a board with no pieces, and report false.
func ParseVariant(name string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "chess":
		return VariantChess, true
	case "checkers":
		return VariantCheckers, true
	case "spacechess":
		return VariantSpaceChess, true
	default:
		return VariantEmpty, false
	}
}

type State int

const (
	StateWhiteToMove State = iota
	StateBlackToMove
)

func (s State) String() string {
	switch s {
	case StateWhiteToMove:
		return "white_to_move"
	case StateBlackToMove:
		return "black_to_move"
	default:
		return "unknown"
	}
}

// StateFor returns the state in which the given color is to move
func StateFor(turn Color) State {
	if turn == ColorBlack {
		return StateBlackToMove
	}
	return StateWhiteToMove
}
