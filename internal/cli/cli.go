package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gameboard/internal/core"

	"github.com/chzyer/readline"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdMove
	CmdUndo
	CmdColor
	CmdHistory
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m",
		darkBg:  "\033[48;5;22m",
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m",
		darkBg:  "\033[48;5;240m",
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

// LineReader is the input side of the console. *readline.Instance satisfies
// it; ScannerReader covers piped input.
type LineReader interface {
	Readline() (string, error)
}

type prompter interface {
	SetPrompt(string)
}

// ScannerReader reads lines from any io.Reader
type ScannerReader struct {
	scanner *bufio.Scanner
}

func NewScannerReader(r io.Reader) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(r)}
}

func (s *ScannerReader) Readline() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// NewTerminalReader returns a readline instance with persistent history
func NewTerminalReader(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

type CLI struct {
	input  LineReader
	output io.Writer
	theme  ColorTheme
	prompt string
}

func New(input LineReader, output io.Writer) *CLI {
	return &CLI{
		input:  input,
		output: output,
		theme:  ThemeOff,
	}
}

// GetCommand reads one command. End of input and Ctrl-C read as CmdQuit.
func (c *CLI) GetCommand() (*Command, error) {
	line, err := c.readLine()
	if IsEndOfInput(err) {
		return &Command{Type: CmdQuit}, nil
	}
	if err != nil {
		return nil, err
	}

	return parseCommand(line), nil
}

// IsEndOfInput reports whether err means the user closed the input or
// pressed Ctrl-C
func IsEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt)
}

func parseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}
	// Only the exact line UNDO takes a move back
	if strings.TrimSpace(input) == "UNDO" {
		return &Command{Type: CmdUndo, Raw: input}
	}

	switch parts[0] {
	case "color":
		return &Command{Type: CmdColor, Args: parts[1:], Raw: input}
	case "history":
		return &Command{Type: CmdHistory, Raw: input}
	case "help", "?":
		return &Command{Type: CmdHelp, Raw: input}
	case "quit", "exit":
		return &Command{Type: CmdQuit, Raw: input}
	default:
		// Anything else goes to the game as a move
		return &Command{Type: CmdMove, Args: parts, Raw: input}
	}
}

// ReadLine reads a raw line with surrounding space trimmed
func (c *CLI) ReadLine() (string, error) {
	return c.readLine()
}

func (c *CLI) readLine() (string, error) {
	if p, ok := c.input.(prompter); ok {
		p.SetPrompt(c.prompt)
	} else if c.prompt != "" {
		fmt.Fprint(c.output, c.prompt)
	}
	c.prompt = ""

	line, err := c.input.Readline()
	return strings.TrimSpace(line), err
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) Theme() ColorTheme {
	return c.theme
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

// ShowPrompt sets the prompt of the next read
func (c *CLI) ShowPrompt(prompt string) {
	c.prompt = prompt
}

// DisplayBoard draws rows of cell glyphs, row 0 (rank 8) first, '.' empty
func (c *CLI) DisplayBoard(rows [8]string) {
	theme := themes[c.theme]
	var sb strings.Builder

	sb.WriteString("\n   A B C D E F G H\n\n")

	for r, row := range rows {
		fmt.Fprintf(&sb, "%d  ", 8-r)
		for f := 0; f < len(row); f++ {
			glyph := row[f]

			if c.theme == ThemeOff {
				sb.WriteByte(glyph)
				sb.WriteByte(' ')
				continue
			}

			bg := theme.darkBg
			if (r+f)%2 == 0 {
				bg = theme.lightBg
			}
			if glyph == '.' {
				fmt.Fprintf(&sb, "%s  %s", bg, theme.reset)
				continue
			}
			color := theme.black
			if isWhiteGlyph(glyph) {
				color = theme.white
			}
			fmt.Fprintf(&sb, "%s%s%c %s", bg, color, glyph, theme.reset)
		}
		fmt.Fprintf(&sb, "%d\n", 8-r)
	}
	sb.WriteString("\n   A B C D E F G H\n")

	c.ShowMessage(sb.String())
}

// White glyphs are upper case letters plus the white accelerator '^'
func isWhiteGlyph(g byte) bool {
	return (g >= 'A' && g <= 'Z') || g == '^'
}

func (c *CLI) ShowMenu() {
	c.ShowMessage("Game menu:")
	c.ShowMessage("  1 - Chess")
	c.ShowMessage("  2 - Checkers")
	c.ShowMessage("  3 - Space chess")
	c.ShowMessage("  4 - Space chess tutorial")
}

func (c *CLI) ShowTutorial() {
	tutorial := `
   <<< Space chess >>>

All pieces not listed here move as in chess.

X - hedgehog. Moves like a bishop, but only one square.
T - trooper. Behaves like a pawn, but never steps two squares from its home row.
    It may always step forward, forward-left and forward-right.
^ - space ship (accelerator). Moves only left or right, one to three squares.
`
	c.ShowMessage(tutorial)
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  <from> <to>      - Make a move (e.g., e2 e4)
  UNDO             - Take back the last move
  color <theme>    - Set board color theme (off|brown|green|gray)
  history          - Show the moves played so far
  quit/exit        - Exit the program
  help/?           - Show this help message`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Gameboard!")
	c.ShowMessage("Moves are two squares, letter first: 'e2 e4'. Type 'help' for commands.")
	c.ShowMessage("")
}

// ShowGameHistory lists moves one per line, labelled with the side that made them
func (c *CLI) ShowGameHistory(variant string, history []core.PlayedMove) {
	c.ShowMessage(fmt.Sprintf("Game: %s", variant))
	if len(history) == 0 {
		c.ShowMessage("No moves yet.")
		return
	}

	for i, m := range history {
		mover := m.Color
		if color, ok := core.ParseColor(m.Color); ok {
			mover = color.Name()
		}
		c.ShowMessage(fmt.Sprintf("%d. %s %s", i+1, mover, m.Move))
	}
}
