package piece_test

import (
	"testing"

	"gameboard/internal/board"
	"gameboard/internal/core"
	"gameboard/internal/piece"
)

func sq(name string) core.Square {
	s, err := core.ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return s
}

func mustRows(t *testing.T, rows ...string) *board.Board {
	t.Helper()
	b, err := board.ParseRows(core.VariantEmpty, rows...)
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	return b
}

type moveCase struct {
	name     string
	rows     []string
	from, to string
	want     bool
}

func runMoveCases(t *testing.T, tests []moveCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustRows(t, tt.rows...)
			p := b.At(sq(tt.from))
			if p.IsEmpty() {
				t.Fatalf("no piece on %s", tt.from)
			}
			if got := p.IsMoveCorrect(sq(tt.from), sq(tt.to), b); got != tt.want {
				t.Errorf("%s.IsMoveCorrect(%s, %s) = %v, want %v", p.Kind, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

var empty = []string{
	"........", "........", "........", "........",
	"........", "........", "........", "........",
}

// with returns the empty board with the given cells set, keyed by square name
func with(cells map[string]byte) []string {
	grid := make([][]byte, 8)
	for r := range grid {
		grid[r] = []byte(empty[r])
	}
	for name, ch := range cells {
		s := sq(name)
		grid[s.Row][s.Col] = ch
	}
	rows := make([]string, 8)
	for r := range grid {
		rows[r] = string(grid[r])
	}
	return rows
}

func TestFriendlyFireIsAlwaysRejected(t *testing.T) {
	// Every mover has a geometrically valid move onto a friendly piece
	tests := []struct {
		mover    byte
		from, to string
	}{
		{'P', "e3", "e4"},
		{'P', "e2", "e4"},
		{'R', "a1", "a5"},
		{'N', "b1", "c3"},
		{'B', "c1", "f4"},
		{'Q', "d1", "d5"},
		{'K', "e1", "e2"},
		{'X', "c3", "d4"},
		{'T', "c3", "c4"},
		{'^', "b3", "d3"},
		{'C', "c3", "d4"},
		{'W', "c3", "f6"},
		{'p', "e7", "e6"},
		{'c', "c6", "d5"},
	}

	for _, tt := range tests {
		b := mustRows(t, with(map[string]byte{tt.from: tt.mover})...)
		p := b.At(sq(tt.from))
		if !p.IsMoveCorrect(sq(tt.from), sq(tt.to), b) {
			t.Fatalf("%s %s-%s should be legal onto an empty square", p.Kind, tt.from, tt.to)
		}

		friend := byte('Q')
		if p.Color == core.ColorBlack {
			friend = 'q'
		}
		b = mustRows(t, with(map[string]byte{tt.from: tt.mover, tt.to: friend})...)
		if p.IsMoveCorrect(sq(tt.from), sq(tt.to), b) {
			t.Errorf("%s %s-%s onto a friendly piece = true, want false", p.Kind, tt.from, tt.to)
		}
	}
}

func TestPawn(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"white single step", with(map[string]byte{"e3": 'P'}), "e3", "e4", true},
		{"white double step from home row", with(map[string]byte{"e2": 'P'}), "e2", "e4", true},
		{"white double step away from home row", with(map[string]byte{"e3": 'P'}), "e3", "e5", false},
		{"double step ignores intermediate square", with(map[string]byte{"e2": 'P', "e3": 'n'}), "e2", "e4", true},
		{"double step onto occupied square", with(map[string]byte{"e2": 'P', "e4": 'n'}), "e2", "e4", false},
		{"single step blocked by enemy", with(map[string]byte{"e3": 'P', "e4": 'n'}), "e3", "e4", false},
		{"backward", with(map[string]byte{"e3": 'P'}), "e3", "e2", false},
		{"sideways", with(map[string]byte{"e3": 'P'}), "e3", "f3", false},
		{"diagonal capture", with(map[string]byte{"e3": 'P', "f4": 'n'}), "e3", "f4", true},
		{"diagonal onto empty", with(map[string]byte{"e3": 'P'}), "e3", "f4", false},
		{"diagonal two columns", with(map[string]byte{"e3": 'P', "g4": 'n'}), "e3", "g4", false},
		{"black single step", with(map[string]byte{"d6": 'p'}), "d6", "d5", true},
		{"black double step from home row", with(map[string]byte{"d7": 'p'}), "d7", "d5", true},
		{"black double step away from home row", with(map[string]byte{"e3": 'p'}), "e3", "e1", false},
		{"black moving toward row 0", with(map[string]byte{"d6": 'p'}), "d6", "d7", false},
		{"black diagonal capture", with(map[string]byte{"d6": 'p', "c5": 'N'}), "d6", "c5", true},
	})
}

func TestRook(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"along column", with(map[string]byte{"a1": 'R'}), "a1", "a8", true},
		{"along row", with(map[string]byte{"a1": 'R'}), "a1", "h1", true},
		{"capture at end of row", with(map[string]byte{"a1": 'R', "d1": 'q'}), "a1", "d1", true},
		{"blocked in column", with(map[string]byte{"a1": 'R', "a4": 'p'}), "a1", "a8", false},
		{"blocked in row", with(map[string]byte{"a1": 'R', "c1": 'P'}), "a1", "h1", false},
		{"diagonal", with(map[string]byte{"a1": 'R'}), "a1", "c3", false},
		{"null move", with(map[string]byte{"a1": 'R'}), "a1", "a1", false},
	})
}

func TestBishop(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"long diagonal", with(map[string]byte{"a1": 'B'}), "a1", "h8", true},
		{"anti diagonal", with(map[string]byte{"h1": 'B'}), "h1", "a8", true},
		{"blocked", with(map[string]byte{"a1": 'B', "d4": 'p'}), "a1", "h8", false},
		{"capture blocker", with(map[string]byte{"a1": 'B', "d4": 'p'}), "a1", "d4", true},
		{"straight", with(map[string]byte{"c1": 'B'}), "c1", "c5", false},
		{"knight shape", with(map[string]byte{"c1": 'B'}), "c1", "d3", false},
	})
}

func TestQueen(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"column", with(map[string]byte{"d1": 'Q'}), "d1", "d8", true},
		{"row", with(map[string]byte{"d4": 'Q'}), "d4", "a4", true},
		{"diagonal", with(map[string]byte{"d1": 'Q'}), "d1", "h5", true},
		{"blocked diagonal", with(map[string]byte{"d1": 'Q', "f3": 'P'}), "d1", "h5", false},
		{"blocked row", with(map[string]byte{"d4": 'Q', "b4": 'p'}), "d4", "a4", false},
		{"knight shape", with(map[string]byte{"d1": 'Q'}), "d1", "e3", false},
	})
}

func TestKnight(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"two up one right", with(map[string]byte{"b1": 'N'}), "b1", "c3", true},
		{"one up two left", with(map[string]byte{"e4": 'N'}), "e4", "c5", true},
		{"jumps over a wall", with(map[string]byte{"b1": 'N', "a2": 'P', "b2": 'P', "c2": 'P'}), "b1", "c3", true},
		{"capture", with(map[string]byte{"b1": 'N', "c3": 'p'}), "b1", "c3", true},
		{"straight", with(map[string]byte{"b1": 'N'}), "b1", "b3", false},
		{"diagonal", with(map[string]byte{"b1": 'N'}), "b1", "c2", false},
	})
}

func TestKing(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"one step", with(map[string]byte{"e1": 'K'}), "e1", "e2", true},
		{"one diagonal", with(map[string]byte{"e1": 'K'}), "e1", "f2", true},
		{"capture", with(map[string]byte{"e1": 'K', "d2": 'p'}), "e1", "d2", true},
		{"two steps", with(map[string]byte{"e1": 'K'}), "e1", "g1", false},
		// The king geometry admits the null move but the king itself sits on
		// the destination, so the friendly piece guard rejects it
		{"null move on the board", with(map[string]byte{"e1": 'K'}), "e1", "e1", false},
	})
}

// ghost is an occupancy that hides the piece on one square
type ghost struct {
	*board.Board
	hidden core.Square
}

func (g ghost) At(s core.Square) piece.Piece {
	if s == g.hidden {
		return piece.Piece{}
	}
	return g.Board.At(s)
}

func TestKingGeometryAdmitsNullMove(t *testing.T) {
	b := mustRows(t, with(map[string]byte{"e1": 'K'})...)
	k := piece.New(piece.King, core.ColorWhite)
	if !k.IsMoveCorrect(sq("e1"), sq("e1"), ghost{Board: b, hidden: sq("e1")}) {
		t.Error("King null move onto an empty square = false, want true")
	}
}

func TestHedgehog(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"diagonal step", with(map[string]byte{"c1": 'X'}), "c1", "d2", true},
		{"backward diagonal step", with(map[string]byte{"c3": 'X'}), "c3", "b2", true},
		{"capture", with(map[string]byte{"c1": 'X', "b2": 'p'}), "c1", "b2", true},
		{"two diagonal steps", with(map[string]byte{"c1": 'X'}), "c1", "e3", false},
		{"straight step", with(map[string]byte{"c1": 'X'}), "c1", "c2", false},
	})
}

func TestTrooper(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"straight forward", with(map[string]byte{"c2": 'T'}), "c2", "c3", true},
		{"forward left onto empty", with(map[string]byte{"c2": 'T'}), "c2", "b3", true},
		{"forward right onto empty", with(map[string]byte{"c2": 'T'}), "c2", "d3", true},
		{"diagonal capture", with(map[string]byte{"c2": 'T', "d3": 't'}), "c2", "d3", true},
		{"straight capture", with(map[string]byte{"c2": 'T', "c3": 't'}), "c2", "c3", false},
		{"never two rows", with(map[string]byte{"c2": 'T'}), "c2", "c4", false},
		{"backward", with(map[string]byte{"c3": 'T'}), "c3", "c2", false},
		{"sideways", with(map[string]byte{"c3": 'T'}), "c3", "d3", false},
		{"black forward", with(map[string]byte{"f7": 't'}), "f7", "g6", true},
	})
}

func TestAccelerator(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"one column", with(map[string]byte{"b3": '^'}), "b3", "c3", true},
		{"three columns", with(map[string]byte{"b3": '^'}), "b3", "e3", true},
		{"four columns", with(map[string]byte{"b3": '^'}), "b3", "f3", false},
		{"leftward", with(map[string]byte{"e3": '^'}), "e3", "b3", true},
		{"ignores pieces in between", with(map[string]byte{"b3": '^', "c3": 'P', "d3": 'p'}), "b3", "e3", true},
		{"capture", with(map[string]byte{"b3": '^', "d3": 'p'}), "b3", "d3", true},
		{"null move", with(map[string]byte{"b3": '^'}), "b3", "b3", false},
		{"changes row", with(map[string]byte{"b3": '^'}), "b3", "b4", false},
		{"black", with(map[string]byte{"g6": 'v'}), "g6", "d6", true},
	})
}

func TestChecker(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"white step", with(map[string]byte{"c3": 'C'}), "c3", "d4", true},
		{"white step backward", with(map[string]byte{"c3": 'C'}), "c3", "d2", false},
		{"step onto enemy", with(map[string]byte{"c3": 'C', "d4": 'c'}), "c3", "d4", false},
		{"straight", with(map[string]byte{"c3": 'C'}), "c3", "c4", false},
		{"black step", with(map[string]byte{"d6": 'c'}), "d6", "e5", true},
		{"jump without a piece", with(map[string]byte{"c3": 'C'}), "c3", "e5", false},
		{"jump over friend", with(map[string]byte{"c3": 'C', "d4": 'C'}), "c3", "e5", false},
		{"jump onto occupied landing", with(map[string]byte{"c3": 'C', "d4": 'c', "e5": 'c'}), "c3", "e5", false},
		{"backward jump", with(map[string]byte{"c3": 'C', "d2": 'c'}), "c3", "e1", false},
	})
}

func TestCheckerJumpReportsCapture(t *testing.T) {
	b := mustRows(t, with(map[string]byte{"c3": 'C', "d4": 'c'})...)
	before := b.Snapshot()

	v := b.At(sq("c3")).Check(sq("c3"), sq("e5"), b)
	if !v.Legal {
		t.Fatal("jump over an enemy checker = illegal, want legal")
	}
	if v.Jumped == nil || *v.Jumped != sq("d4") {
		t.Fatalf("Jumped = %v, want d4", v.Jumped)
	}
	if b.Snapshot() != before {
		t.Error("Check modified the board")
	}

	v = b.At(sq("c3")).Check(sq("c3"), sq("d4"), b)
	if v.Jumped != nil {
		t.Errorf("illegal move reported a jumped square %v", v.Jumped)
	}
}

func TestCrownedChecker(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"long slide", with(map[string]byte{"a1": 'W'}), "a1", "h8", true},
		{"backward slide", with(map[string]byte{"h8": 'W'}), "h8", "a1", true},
		{"blocked slide", with(map[string]byte{"a1": 'W', "c3": 'c'}), "a1", "h8", false},
		{"no jump capture", with(map[string]byte{"c3": 'W', "d4": 'c'}), "c3", "e5", false},
		{"straight", with(map[string]byte{"c3": 'W'}), "c3", "c6", false},
		{"black slide", with(map[string]byte{"b8": 'w'}), "b8", "h2", true},
	})
}

func TestSlidersObstruction(t *testing.T) {
	// Removing the blocker turns a rejected slide into a legal one
	tests := []struct {
		mover    byte
		from, to string
		blocker  string
	}{
		{'R', "a1", "a8", "a5"},
		{'B', "a1", "h8", "e5"},
		{'Q', "a1", "h8", "b2"},
		{'Q', "h1", "h8", "h7"},
		{'W', "a1", "h8", "g7"},
	}

	for _, tt := range tests {
		blocked := mustRows(t, with(map[string]byte{tt.from: tt.mover, tt.blocker: 'P'})...)
		p := blocked.At(sq(tt.from))
		if p.IsMoveCorrect(sq(tt.from), sq(tt.to), blocked) {
			t.Errorf("%s %s-%s through %s = true, want false", p.Kind, tt.from, tt.to, tt.blocker)
		}
		if err := blocked.Remove(sq(tt.blocker)); err != nil {
			t.Fatal(err)
		}
		if !p.IsMoveCorrect(sq(tt.from), sq(tt.to), blocked) {
			t.Errorf("%s %s-%s with clear path = false, want true", p.Kind, tt.from, tt.to)
		}
	}
}

func TestJumpersIgnoreObstruction(t *testing.T) {
	full := []string{
		"pppppppp", "pppppppp", "pppppppp", "pppppppp",
		"pppppppp", "pppppppp", "pppppppp", "pppppppp",
	}
	tests := []struct {
		mover    byte
		from, to string
	}{
		{'N', "d4", "e6"},
		{'N', "d4", "b3"},
		{'^', "d4", "g4"},
		{'^', "d4", "a4"},
	}
	for _, tt := range tests {
		rows := append([]string(nil), full...)
		s := sq(tt.from)
		row := []byte(rows[s.Row])
		row[s.Col] = tt.mover
		rows[s.Row] = string(row)

		b := mustRows(t, rows...)
		p := b.At(s)
		if !p.IsMoveCorrect(s, sq(tt.to), b) {
			t.Errorf("%s %s-%s on a crowded board = false, want true", p.Kind, tt.from, tt.to)
		}
	}
}

func TestOutOfRangeAndEmpty(t *testing.T) {
	b := mustRows(t, with(map[string]byte{"a1": 'R'})...)
	r := b.At(sq("a1"))
	if r.IsMoveCorrect(sq("a1"), core.Square{Row: 7, Col: 8}, b) {
		t.Error("move off the board = true, want false")
	}
	if (piece.Piece{}).IsMoveCorrect(sq("a2"), sq("a3"), b) {
		t.Error("empty piece move = true, want false")
	}
}
