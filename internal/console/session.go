// Package console runs a game from line-based text commands.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/TicTacToe/internal/game"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
)

// ErrQuit is returned by Execute when the player asks to leave
var ErrQuit = errors.New("quit")

const helpText = `commands:
  place <cell>       place the next mark on cell 0-8 (row-major)
  place <col> <row>  place the next mark at column, row 0-2
  jump <step>        view an earlier step of the history
  back | forward     step one move through the history
  reverse            flip the history order
  show               print the board and history
  help               print this text
  quit               leave
`

// Session reads commands and prints the board after each one.
type Session struct {
	engine   *game.Engine
	out      io.Writer
	useColor bool
	logger   zerolog.Logger
}

func NewSession(engine *game.Engine, out io.Writer, useColor bool, logger zerolog.Logger) *Session {
	return &Session{
		engine:   engine,
		out:      out,
		useColor: useColor,
		logger:   logger.With().Str("component", "ConsoleSession").Logger(),
	}
}

// Run executes commands from in until it is exhausted or the player quits.
func (s *Session) Run(in io.Reader) error {
	s.show()
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		err := s.Execute(scanner.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "%s\n", describe(err))
		}
	}
}

// Execute runs one command line. Rejected moves are returned as errors and
// leave the game unchanged.
func (s *Session) Execute(line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	s.logger.Debug().Strs("command", fields).Msg("Executing command")

	switch fields[0] {
	case "place", "p":
		idx, err := parseCell(fields[1:])
		if err != nil {
			return err
		}
		if err := s.engine.PlaceMark(idx); err != nil {
			return err
		}
	case "jump", "j":
		if len(fields) != 2 {
			return fmt.Errorf("usage: jump <step>: %w", core.ErrInvalidArgument)
		}
		step, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("step %q is not a number: %w", fields[1], core.ErrInvalidArgument)
		}
		if err := s.engine.JumpTo(step); err != nil {
			return err
		}
	case "back", "b":
		if err := s.engine.JumpTo(s.engine.CurrentStep() - 1); err != nil {
			return err
		}
	case "forward", "f":
		if err := s.engine.JumpTo(s.engine.CurrentStep() + 1); err != nil {
			return err
		}
	case "reverse", "r":
		s.engine.ToggleOrder()
	case "show", "s":
	case "help", "h", "?":
		fmt.Fprint(s.out, helpText)
		return nil
	case "quit", "q", "exit":
		return ErrQuit
	default:
		return fmt.Errorf("unknown command %q: %w", fields[0], core.ErrInvalidArgument)
	}

	s.show()
	return nil
}

func (s *Session) show() {
	fmt.Fprint(s.out, s.engine.Board(s.useColor))
	fmt.Fprint(s.out, game.RenderHistory(s.engine.Snapshot()))
}

// parseCell accepts either a cell index or a column and row.
func parseCell(args []string) (int, error) {
	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number: %w", a, core.ErrInvalidArgument)
		}
		nums[i] = n
	}

	switch len(nums) {
	case 1:
		return nums[0], nil
	case 2:
		loc := core.Location{Col: nums[0], Row: nums[1]}
		if !loc.IsValid() {
			return 0, fmt.Errorf("location %s off the board: %w", loc, core.ErrInvalidArgument)
		}
		return loc.ToIndex(), nil
	default:
		return 0, fmt.Errorf("usage: place <cell> | place <col> <row>: %w", core.ErrInvalidArgument)
	}
}

func describe(err error) string {
	switch {
	case errors.Is(err, core.ErrCellOccupied):
		return "that cell is taken"
	case errors.Is(err, core.ErrGameOver):
		return "the game is over; jump back to keep playing"
	default:
		return err.Error()
	}
}
