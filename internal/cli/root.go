package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mcoot/foxhound-go/internal/factory"
	"github.com/mcoot/foxhound-go/internal/middleware"
	"github.com/mcoot/foxhound-go/internal/model"
)

var (
	cfg    *Config
	app    *factory.App
	logger zerolog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()
	app = nil
	logger = zerolog.Nop()

	rootCmd := &cobra.Command{
		Use:   "foxhound",
		Short: "Play Fox and Hounds in the terminal",
		Long: `foxhound plays Fox and Hounds on square boards from 4x4 to 26x26.

One Fox tries to reach the Hounds' home row while the Hounds, which may only
move forward, try to trap it. Games are kept in named save slots, or exported
to .txt files, and either side can be played by the built-in bot.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				cfg.HasSeed = true
			}

			var err error
			logger, err = NewLogger(cmd.ErrOrStderr(), cfg.Verbose, cfg.LogLevel)
			if err != nil {
				return err
			}

			app, err = factory.New(cfg.FactoryConfig(&logger))
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.StorageType, "storage", cfg.StorageType,
		fmt.Sprintf("Save slot backend: %s (env: FOXHOUND_STORAGE)", strings.Join(factory.ValidStorageTypes(), ", ")))
	flags.StringVar(&cfg.SaveDir, "save-dir", cfg.SaveDir, "Directory for the file backend (env: FOXHOUND_SAVE_DIR)")
	flags.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "Database file for the sqlite backend (env: FOXHOUND_SQLITE_PATH)")
	flags.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for the redis backend (env: FOXHOUND_REDIS_URL)")
	flags.StringVar(&cfg.Strategy, "strategy", cfg.Strategy,
		fmt.Sprintf("Bot strategy: %s (env: FOXHOUND_STRATEGY)", strings.Join(model.ValidBotStrategies(), ", ")))
	flags.IntVar(&cfg.Depth, "depth", cfg.Depth, "Minimax search depth (env: FOXHOUND_DEPTH)")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the random bot (env: FOXHOUND_SEED)")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	flags.BoolVar(&cfg.Fancy, "fancy", cfg.Fancy, "Draw boards as boxed grids (env: FOXHOUND_FANCY)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Write logs to stderr")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level when verbose (env: FOXHOUND_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newAICmd())
	rootCmd.AddCommand(newSavesCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newPlayCmd())

	return rootCmd
}

// wrap runs body through the logging and recovery middleware. The chain is
// built per call since the logger only exists once flags are parsed.
func wrap(body middleware.RunE) middleware.RunE {
	return func(cmd *cobra.Command, args []string) error {
		return middleware.Chain(body, middleware.Logging(logger), middleware.Recovery(logger))(cmd, args)
	}
}

// output returns a formatter writing to the command's streams
func output(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).WithBoard(BoardStyle(cfg.Fancy))
}

// Execute runs the root command until it finishes or the process is
// interrupted
func Execute() {
	if err := LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		NewOutput(cfg.Output, os.Stdout, os.Stderr).PrintError(err)
		stop()
		os.Exit(1)
	}
}
