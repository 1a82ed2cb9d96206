package cli

import (
	"bytes"
	"strings"
	"testing"

	"gameboard/internal/cli"
	"gameboard/internal/core"
	"gameboard/internal/service"
	"gameboard/internal/testutil"
)

func runSession(t *testing.T, input string) (string, *service.Service) {
	t.Helper()
	svc, err := service.New(nil)
	if err != nil {
		t.Fatalf("service.New: %v", err)
	}
	var out bytes.Buffer
	view := cli.New(cli.NewScannerReader(strings.NewReader(input)), &out)

	if err := New(svc, view).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String(), svc
}

func TestMenuSelection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"chess", "1\nquit\n", "8  r n b k q b n r 8"},
		{"checkers", "2\nquit\n", "8  . c . c . c . c 8"},
		{"spacechess", "3\nquit\n", "8  r n x k q x n r 8"},
		{"tutorial then chess", "4\n1\nquit\n", "X - hedgehog"},
		{"invalid choice", "9\n2\nquit\n", "Enter 1, 2, 3 or 4. Try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := runSession(t, tt.input)
			if !strings.Contains(out, tt.want) {
				t.Errorf("output does not contain %q:\n%s", tt.want, out)
			}
			if !strings.Contains(out, "White to move. Move 1") {
				t.Errorf("game never started:\n%s", out)
			}
		})
	}
}

func TestMenuEndOfInput(t *testing.T) {
	out, svc := runSession(t, "")
	if strings.Contains(out, "to move") {
		t.Errorf("game started without a choice:\n%s", out)
	}
	testutil.AssertEqual(t, svc.GameCount(), 0)
}

func TestMoveLoop(t *testing.T) {
	out, svc := runSession(t, strings.Join([]string{
		"1",
		"e2 e4",
		"e2 e4", // now black to move: rejected
		"e7 e5",
		"history",
		"UNDO",
		"UNDO",
		"UNDO",
		"color purple",
		"color green",
		"help",
	}, "\n")+"\n")

	for _, want := range []string{
		"Black to move. Move 2",
		"This move is not possible, try another one.",
		"White to move. Move 3",
		"1. White e2 e4\n2. Black e7 e5\n",
		"Board returned one move back.",
		"Error: " + core.ErrNothingToUndo.Error(),
		"Error: invalid theme: purple",
		"Color theme set to: green",
		"UNDO             - Take back the last move",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}

	// Undo leaves the side to move and the move counter alone
	if !strings.HasSuffix(strings.TrimRight(out, " \n:"), "White to move. Move 3\nEnter a move, letter first (e.g. e2 e4)") {
		t.Errorf("unexpected final prompt:\n%s", out[max(0, len(out)-200):])
	}
	testutil.AssertEqual(t, svc.GameCount(), 0, "game is dropped when the loop ends")
}

func TestHistoryAfterUndo(t *testing.T) {
	out, _ := runSession(t, "1\ne2 e4\nUNDO\ne7 e5\nhistory\n")

	if !strings.Contains(out, "Game: chess\n1. Black e7 e5\n") {
		t.Errorf("history does not label the move by its mover:\n%s", out)
	}
	if strings.Contains(out, "White e2 e4") {
		t.Errorf("history lists a move that is not on the board:\n%s", out)
	}
}

func TestProcessCommand(t *testing.T) {
	svc, err := service.New(nil)
	if err != nil {
		t.Fatalf("service.New: %v", err)
	}
	id, err := svc.CreateGame(core.VariantCheckers, "", core.ColorWhite)
	testutil.AssertNoError(t, err)

	var out bytes.Buffer
	h := New(svc, cli.New(cli.NewScannerReader(strings.NewReader("")), &out))
	h.gameID = id
	h.number = 1

	tests := []struct {
		cmd       cli.Command
		keepGoing bool
		number    int
	}{
		{cli.Command{Type: cli.CmdNone}, true, 1},
		{cli.Command{Type: cli.CmdMove, Raw: "a3 b4"}, true, 2},
		{cli.Command{Type: cli.CmdMove, Raw: "a3 b4"}, true, 2},
		{cli.Command{Type: cli.CmdMove, Raw: "b6 a5"}, true, 3},
		{cli.Command{Type: cli.CmdUndo, Raw: "UNDO"}, true, 3},
		{cli.Command{Type: cli.CmdColor}, true, 3},
		{cli.Command{Type: cli.CmdQuit}, false, 3},
	}

	for _, tt := range tests {
		got := h.ProcessCommand(&tt.cmd)
		testutil.AssertEqual(t, got, tt.keepGoing, "ProcessCommand(%q)", tt.cmd.Raw)
		testutil.AssertEqual(t, h.number, tt.number, "move number after %q", tt.cmd.Raw)
	}

	view, err := svc.GetGame(id)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, view.Moves, []string{"a3 b4"})
	testutil.AssertEqual(t, view.History, []core.PlayedMove{{Move: "a3 b4", Color: "w"}})
	testutil.AssertEqual(t, view.Turn, "w")
}
