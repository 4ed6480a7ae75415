package middleware

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RunE is the signature of a cobra command body
type RunE func(cmd *cobra.Command, args []string) error

// Logging wraps a command body and logs its path, duration and outcome
func Logging(logger zerolog.Logger) func(RunE) RunE {
	return func(next RunE) RunE {
		return func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			err := next(cmd, args)

			event := logger.Info()
			if err != nil {
				event = logger.Warn().Err(err)
			}
			event.
				Str("command", cmd.CommandPath()).
				Int("args", len(args)).
				Dur("duration", time.Since(start)).
				Msg("command finished")

			return err
		}
	}
}

// Chain applies middlewares so the first one listed runs outermost
func Chain(body RunE, middlewares ...func(RunE) RunE) RunE {
	for i := len(middlewares) - 1; i >= 0; i-- {
		body = middlewares[i](body)
	}
	return body
}
