package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/foxhound-go/internal/model"
)

func newNewCmd() *cobra.Command {
	var (
		dimension int
		name      string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a standard game and save it",
		Long: `Start a game with the Hounds on their home row and the Fox on the far edge,
and store it in a save slot. A slot name is generated when --name is omitted.`,
		Args: cobra.NoArgs,
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			state, err := app.GameController.NewGame(dimension)
			if err != nil {
				return err
			}

			save, err := app.GameController.Save(cmd.Context(), name, state)
			if err != nil {
				return err
			}

			output(cmd).Print(NewGameView(save.Name, state))
			return nil
		}),
	}

	cmd.Flags().IntVar(&dimension, "dim", model.DefaultDimension,
		fmt.Sprintf("Board dimension (%d-%d)", model.MinDimension, model.MaxDimension))
	cmd.Flags().StringVar(&name, "name", "", "Save slot name")

	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <slot>",
		Short: "Show the board of a saved game",
		Args:  cobra.ExactArgs(1),
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			state, err := app.GameController.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			output(cmd).Print(NewGameView(args[0], state))
			return nil
		}),
	}
}

// StatusView is the short form of a game printed by the status command
type StatusView struct {
	Save   string `json:"save"`
	Status string `json:"status"`
	Phase  string `json:"phase"`
	Turn   string `json:"turn"`
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <slot>",
		Short: "Show who is to move, or who won",
		Args:  cobra.ExactArgs(1),
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			state, err := app.GameController.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			status := app.GameController.Status(state)
			out := output(cmd)
			if cfg.Output == "json" {
				out.Print(StatusView{
					Save:   args[0],
					Status: string(status),
					Phase:  string(state.Phase()),
					Turn:   state.Turn.String(),
				})
				return nil
			}
			out.PrintMessage(StatusLine(string(status), state.Turn.String()))
			return nil
		}),
	}
}

func newMoveCmd() *cobra.Command {
	var reply bool

	cmd := &cobra.Command{
		Use:   "move <slot> <from> <to>",
		Short: "Move a piece of the side to move",
		Long: `Move the piece on <from> to <to>, e.g. "move mygame E8 D7". The game is only
saved back to its slot when the move is legal. With --reply the bot answers
for the other side straight away.`,
		Args: cobra.ExactArgs(3),
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			slot := args[0]

			state, err := app.GameController.Load(ctx, slot)
			if err != nil {
				return err
			}

			next, result, err := app.GameController.TryMove(state, args[1], args[2])
			if err != nil {
				return err
			}
			views := []MoveView{NewMoveView(slot, result, next)}

			if reply && !next.IsOver() {
				replied, botResult, err := app.BotService.PlayTurn(ctx, next)
				if err != nil {
					return err
				}
				next = replied
				views = append(views, NewMoveView(slot, botResult, next))
			}

			if _, err := app.GameController.Save(ctx, slot, next); err != nil {
				return err
			}

			printMoves(output(cmd), views)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&reply, "reply", false, "Let the bot play the other side's reply")

	return cmd
}

func newAICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ai <slot>",
		Short: "Let the bot move for the side to move",
		Long: `Let the bot pick and play a move for the side to move. The global --strategy
flag chooses how it plays.`,
		Args: cobra.ExactArgs(1),
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			slot := args[0]

			state, err := app.GameController.Load(ctx, slot)
			if err != nil {
				return err
			}

			next, result, err := app.BotService.PlayTurn(ctx, state)
			if err != nil {
				return err
			}

			if _, err := app.GameController.Save(ctx, slot, next); err != nil {
				return err
			}

			output(cmd).Print(NewMoveView(slot, result, next))
			return nil
		}),
	}
}

// printMoves prints the board after the last move, with a line for each
// earlier one. JSON output gets the whole list when there is more than one.
func printMoves(out *Output, views []MoveView) {
	last := views[len(views)-1]
	if len(views) == 1 {
		out.Print(last)
		return
	}
	if cfg.Output == "json" {
		out.Print(views)
		return
	}
	for _, v := range views[:len(views)-1] {
		out.PrintMessage(fmt.Sprintf("%s moved %s", v.Piece, v.Move))
	}
	out.Print(last)
}
