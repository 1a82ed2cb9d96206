// Package main runs the console game: pick a variant, then enter moves.
package main

import (
	"flag"
	"fmt"
	"os"

	"gameboard/internal/cli"
	"gameboard/internal/core"
	"gameboard/internal/service"
	clitransport "gameboard/internal/transport/cli"

	"golang.org/x/term"
)

func main() {
	var (
		variant     = flag.String("variant", "", "Start this game without the menu (chess, checkers, spacechess)")
		theme       = flag.String("theme", "", "Board color theme (off, brown, green, gray); default brown on a terminal")
		historyFile = flag.String("history-file", ".gameboard_history", "Readline history file (empty disables)")
	)
	flag.Parse()

	svc, err := service.New(nil)
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer svc.Close()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	var input cli.LineReader
	if interactive {
		rl, err := cli.NewTerminalReader(*historyFile)
		if err != nil {
			fmt.Printf("Failed to start: %v\n", err)
			os.Exit(1)
		}
		defer rl.Close()
		input = rl
	} else {
		input = cli.NewScannerReader(os.Stdin)
	}

	view := cli.New(input, os.Stdout)

	selected := cli.ThemeOff
	if interactive && term.IsTerminal(int(os.Stdout.Fd())) {
		selected = cli.ThemeBrown
	}
	if *theme != "" {
		selected = cli.ColorTheme(*theme)
	}
	if err := view.SetTheme(selected); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	handler := clitransport.New(svc, view)
	view.ShowWelcome()

	if *variant != "" {
		v, ok := core.ParseVariant(*variant)
		if !ok {
			fmt.Printf("Unknown variant %q, starting an empty board\n", *variant)
		}
		err = handler.Play(v)
	} else {
		err = handler.Run()
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
