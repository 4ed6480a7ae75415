package middleware

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"
)

type MiddlewareSuite struct {
	suite.Suite
	buf    *bytes.Buffer
	logger zerolog.Logger
	cmd    *cobra.Command
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareSuite))
}

func (s *MiddlewareSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	s.logger = zerolog.New(s.buf)
	s.cmd = &cobra.Command{Use: "move"}
}

// Logging tests

func (s *MiddlewareSuite) TestLoggingRecordsSuccess() {
	called := false
	run := Logging(s.logger)(func(cmd *cobra.Command, args []string) error {
		called = true
		return nil
	})

	s.Require().NoError(run(s.cmd, []string{"a", "b"}))
	s.True(called)
	s.Contains(s.buf.String(), `"command":"move"`)
	s.Contains(s.buf.String(), `"level":"info"`)
	s.Contains(s.buf.String(), `"args":2`)
}

func (s *MiddlewareSuite) TestLoggingPassesErrorThrough() {
	boom := errors.New("boom")
	run := Logging(s.logger)(func(cmd *cobra.Command, args []string) error {
		return boom
	})

	s.ErrorIs(run(s.cmd, nil), boom)
	s.Contains(s.buf.String(), `"level":"warn"`)
	s.Contains(s.buf.String(), `"error":"boom"`)
}

// Recovery tests

func (s *MiddlewareSuite) TestRecoveryConvertsPanic() {
	run := Recovery(s.logger)(func(cmd *cobra.Command, args []string) error {
		panic("kaboom")
	})

	err := run(s.cmd, nil)
	s.Require().Error(err)
	s.Contains(err.Error(), "kaboom")
	s.Contains(s.buf.String(), "panic recovered")
	s.Contains(s.buf.String(), `"stack"`)
}

func (s *MiddlewareSuite) TestRecoveryLeavesNormalErrors() {
	boom := errors.New("boom")
	run := Recovery(s.logger)(func(cmd *cobra.Command, args []string) error {
		return boom
	})

	s.ErrorIs(run(s.cmd, nil), boom)
	s.Empty(s.buf.String())
}

// Chain tests

func (s *MiddlewareSuite) TestChainOrder() {
	var order []string
	mark := func(name string) func(RunE) RunE {
		return func(next RunE) RunE {
			return func(cmd *cobra.Command, args []string) error {
				order = append(order, name)
				return next(cmd, args)
			}
		}
	}

	run := Chain(func(cmd *cobra.Command, args []string) error {
		order = append(order, "body")
		return nil
	}, mark("outer"), mark("inner"))

	s.Require().NoError(run(s.cmd, nil))
	s.Equal([]string{"outer", "inner", "body"}, order)
}
