package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Recovery turns a panic in a command body into a logged error, so the
// interactive loop and the process exit cleanly
func Recovery(logger zerolog.Logger) func(RunE) RunE {
	return func(next RunE) RunE {
		return func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error().
						Interface("panic", r).
						Str("stack", string(debug.Stack())).
						Str("command", cmd.CommandPath()).
						Msg("panic recovered")

					err = fmt.Errorf("internal error: %v", r)
				}
			}()

			return next(cmd, args)
		}
	}
}
