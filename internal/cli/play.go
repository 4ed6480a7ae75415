package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/services/bot"
	"github.com/mcoot/foxhound-go/internal/services/game"
)

// Menu entries of the interactive game
const (
	MenuMove = iota + 1
	MenuAI
	MenuSave
	MenuLoad
	MenuExit
)

const mainMenu = "\n1. Move\n2. AI Move\n3. Save\n4. Load\n5. Exit\n\nEnter 1 - 5:"

func newPlayCmd() *cobra.Command {
	var (
		dimension int
		foxAI     bool
		houndAI   bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game in the terminal",
		Long: `Play a game from a menu: move a piece, let the bot move, save to or load
from a .txt file, or exit. Sides given with --fox-ai or --hound-ai are played
by the bot automatically.`,
		Args: cobra.NoArgs,
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			state, err := app.GameController.NewGame(dimension)
			if err != nil {
				return err
			}

			var bots []model.PieceKind
			if foxAI {
				bots = append(bots, model.Fox)
			}
			if houndAI {
				bots = append(bots, model.Hound)
			}

			session := NewSession(app.GameController, app.BotService, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), bots...).
				WithBoard(BoardStyle(cfg.Fancy))
			_, err = session.Run(cmd.Context(), state)
			return err
		}),
	}

	cmd.Flags().IntVar(&dimension, "dim", model.DefaultDimension,
		fmt.Sprintf("Board dimension (%d-%d)", model.MinDimension, model.MaxDimension))
	cmd.Flags().BoolVar(&foxAI, "fox-ai", false, "Let the bot play the Fox")
	cmd.Flags().BoolVar(&houndAI, "hound-ai", false, "Let the bot play the Hounds")

	return cmd
}

// Session runs the interactive menu loop over one game
type Session struct {
	controller game.ControllerInterface
	bots       *bot.Service
	botSides   []model.PieceKind

	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
	render BoardRenderer
}

// NewSession creates a Session reading commands from in. Sides listed in
// botSides are moved by the bot without prompting.
func NewSession(
	controller game.ControllerInterface,
	bots *bot.Service,
	in io.Reader,
	out io.Writer,
	errOut io.Writer,
	botSides ...model.PieceKind,
) *Session {
	return &Session{
		controller: controller,
		bots:       bots,
		botSides:   botSides,
		in:         bufio.NewScanner(in),
		out:        out,
		errOut:     errOut,
		render:     RenderBoard,
	}
}

// WithBoard sets how the board is drawn between turns
func (s *Session) WithBoard(render BoardRenderer) *Session {
	s.render = render
	return s
}

// Run plays state until the game ends, the player exits or input runs out,
// and returns the last state
func (s *Session) Run(ctx context.Context, state *model.GameState) (*model.GameState, error) {
	for {
		if err := ctx.Err(); err != nil {
			return state, err
		}

		next, results, err := s.bots.ProcessBotTurns(ctx, state, s.botSides...)
		for _, r := range results {
			fmt.Fprintf(s.out, "%s moved %s\n", r.Piece, r.Move)
		}
		if err != nil {
			return next, err
		}
		state = next

		fmt.Fprintln(s.out)
		s.render(s.out, state)
		fmt.Fprintln(s.out)

		if state.IsOver() {
			fmt.Fprintln(s.out, StatusLine(string(state.Status()), state.Turn.String()))
			return state, nil
		}

		choice, ok := s.menuQuery(state.Turn)
		if !ok {
			return state, nil
		}

		switch choice {
		case MenuMove:
			origin, destination, ok := s.positionQuery(state.Dimension)
			if !ok {
				return state, nil
			}
			next, _, err := s.controller.TryMove(state, origin, destination)
			if err != nil {
				s.printError(err)
				continue
			}
			state = next
		case MenuAI:
			next, result, err := s.bots.PlayTurn(ctx, state)
			if err != nil {
				s.printError(err)
				continue
			}
			fmt.Fprintf(s.out, "%s moved %s\n", result.Piece, result.Move)
			state = next
		case MenuSave:
			path, ok := s.fileQuery()
			if !ok {
				return state, nil
			}
			if err := s.controller.Export(state, path); err != nil {
				s.printError(err)
				continue
			}
			fmt.Fprintf(s.out, "Game saved to %s\n", path)
		case MenuLoad:
			path, ok := s.fileQuery()
			if !ok {
				return state, nil
			}
			loaded, err := s.controller.Import(path)
			if err != nil {
				s.printError(err)
				continue
			}
			fmt.Fprintf(s.out, "Game loaded from %s\n", path)
			state = loaded
		case MenuExit:
			return state, nil
		}
	}
}

// menuQuery prompts until a menu number is entered. It returns false once
// input is exhausted.
func (s *Session) menuQuery(turn model.PieceKind) (int, bool) {
	for {
		if turn == model.Hound {
			fmt.Fprintln(s.out, "Hounds to move")
		} else {
			fmt.Fprintln(s.out, "Fox to move")
		}
		fmt.Fprintln(s.out, mainMenu)

		line, ok := s.readLine()
		if !ok {
			return 0, false
		}

		fields := strings.Fields(line)
		if len(fields) > 0 {
			if choice, err := strconv.Atoi(fields[0]); err == nil && choice >= MenuMove && choice <= MenuExit {
				return choice, true
			}
		}
		fmt.Fprintln(s.out, "Please enter valid number.")
	}
}

// positionQuery prompts until two coordinates separated by whitespace are
// entered. Whether they name squares on the board is left to the move check.
func (s *Session) positionQuery(dimension int) (string, string, bool) {
	for {
		fmt.Fprintln(s.out, "Provide origin and destination coordinates.")
		fmt.Fprintf(s.out, "Enter two positions between A1-%c%d:\n", 'A'+dimension-1, dimension)

		line, ok := s.readLine()
		if !ok {
			return "", "", false
		}

		fields := strings.Fields(line)
		if len(fields) == 2 {
			return fields[0], fields[1], true
		}
		fmt.Fprintln(s.errOut, "ERROR: Please enter valid coordinate pair separated by space.")
		fmt.Fprintln(s.out)
	}
}

// fileQuery prompts until a .txt path is entered
func (s *Session) fileQuery() (string, bool) {
	for {
		fmt.Fprintln(s.out, "Enter file path:")

		line, ok := s.readLine()
		if !ok {
			return "", false
		}

		path := strings.TrimSpace(line)
		if strings.HasSuffix(strings.ToLower(path), ".txt") {
			return path, true
		}
		fmt.Fprintln(s.errOut, "ERROR: not .txt file.")
		fmt.Fprintln(s.out)
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) printError(err error) {
	fmt.Fprintf(s.errOut, "ERROR: %s\n", err)
	fmt.Fprintln(s.out)
}
