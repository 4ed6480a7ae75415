package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSavesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saves",
		Short: "Save slot commands",
	}

	cmd.AddCommand(newSavesListCmd())
	cmd.AddCommand(newSavesDeleteCmd())

	return cmd
}

func newSavesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved games",
		Args:  cobra.NoArgs,
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			saves, err := app.GameController.ListSaves(cmd.Context())
			if err != nil {
				return err
			}

			views := make([]SaveView, 0, len(saves))
			for _, save := range saves {
				views = append(views, NewSaveView(save))
			}

			output(cmd).Print(views)
			return nil
		}),
	}
}

func newSavesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <slot>",
		Short: "Delete a saved game",
		Args:  cobra.ExactArgs(1),
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			if err := app.GameController.DeleteSave(cmd.Context(), args[0]); err != nil {
				return err
			}

			output(cmd).PrintMessage(fmt.Sprintf("Deleted %s", args[0]))
			return nil
		}),
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <slot> <path.txt>",
		Short: "Write a saved game to a .txt file",
		Args:  cobra.ExactArgs(2),
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			state, err := app.GameController.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err := app.GameController.Export(state, args[1]); err != nil {
				return err
			}

			output(cmd).PrintMessage(fmt.Sprintf("Exported %s to %s", args[0], args[1]))
			return nil
		}),
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path.txt> <slot>",
		Short: "Read a game from a .txt file into a save slot",
		Long: `Read a game from a .txt file and store it under <slot>. The slot is left
untouched when the file cannot be read or does not hold a valid game.`,
		Args: cobra.ExactArgs(2),
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			state, err := app.GameController.Import(args[0])
			if err != nil {
				return err
			}

			save, err := app.GameController.Save(cmd.Context(), args[1], state)
			if err != nil {
				return err
			}

			output(cmd).Print(NewGameView(save.Name, state))
			return nil
		}),
	}
}
