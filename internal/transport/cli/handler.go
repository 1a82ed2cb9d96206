package cli

import (
	"fmt"

	"gameboard/internal/cli"
	"gameboard/internal/core"
	"gameboard/internal/transport"
)

type CLIHandler struct {
	svc    transport.Service
	view   *cli.CLI
	gameID string
	number int
}

func New(svc transport.Service, view *cli.CLI) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// Run shows the game menu, then plays the chosen game until the user quits
func (h *CLIHandler) Run() error {
	variant, ok, err := h.selectVariant()
	if err != nil || !ok {
		return err
	}
	return h.Play(variant)
}

// selectVariant loops over the menu until a game is chosen. ok is false when
// input ends first.
func (h *CLIHandler) selectVariant() (core.Variant, bool, error) {
	for {
		h.view.ShowMenu()
		h.view.ShowPrompt("Enter game number: ")

		choice, err := h.view.ReadLine()
		if err != nil {
			if cli.IsEndOfInput(err) {
				return core.VariantEmpty, false, nil
			}
			return core.VariantEmpty, false, err
		}

		switch choice {
		case "1":
			return core.VariantChess, true, nil
		case "2":
			return core.VariantCheckers, true, nil
		case "3":
			return core.VariantSpaceChess, true, nil
		case "4":
			h.view.ShowTutorial()
		default:
			h.view.ShowMessage("Enter 1, 2, 3 or 4. Try again.\n")
		}
	}
}

// Play runs the move loop on a new game of the variant
func (h *CLIHandler) Play(variant core.Variant) error {
	id, err := h.svc.CreateGame(variant, "", core.ColorWhite)
	if err != nil {
		return fmt.Errorf("could not start the game: %w", err)
	}
	h.gameID = id
	h.number = 1
	defer func() {
		h.svc.DeleteGame(h.gameID)
		h.gameID = ""
	}()

	for {
		view, err := h.svc.GetGame(h.gameID)
		if err != nil {
			return err
		}
		h.view.DisplayBoard(view.Rows)
		h.view.ShowMessage(fmt.Sprintf("%s to move. Move %d", colorName(view.Turn), h.number))
		h.view.ShowPrompt("Enter a move, letter first (e.g. e2 e4): ")

		cmd, err := h.view.GetCommand()
		if err != nil {
			return err
		}
		if !h.ProcessCommand(cmd) {
			return nil
		}
	}
}

// ProcessCommand handles one command - returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		// Empty line redraws the board

	case cli.CmdMove:
		if _, err := h.svc.SubmitMove(h.gameID, cmd.Raw); err != nil {
			h.view.ShowMessage("This move is not possible, try another one.\n")
			return true
		}
		h.number++

	case cli.CmdUndo:
		if _, err := h.svc.Undo(h.gameID); err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowMessage("Board returned one move back.")

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}
		theme := cli.ColorTheme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))

	case cli.CmdHistory:
		view, err := h.svc.GetGame(h.gameID)
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowGameHistory(view.Variant, view.History)

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func colorName(turn string) string {
	c, _ := core.ParseColor(turn)
	return c.Name()
}
