package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type GameStateSuite struct {
	suite.Suite
}

func TestGameStateSuite(t *testing.T) {
	suite.Run(t, new(GameStateSuite))
}

func (s *GameStateSuite) TestNewGameStateStandardSetup() {
	state, err := NewGameState(8)
	s.Require().NoError(err)

	s.Equal(8, state.Dimension)
	s.Equal([]Position{{0, 1}, {0, 3}, {0, 5}, {0, 7}}, state.Hounds)
	s.Equal(Position{Row: 7, Col: 4}, state.Fox)
	s.Equal("E8", state.Fox.String())
	s.Equal(Fox, state.Turn)
	s.Equal(PhaseAwaitingFoxMove, state.Phase())
	s.Equal(StatusContinue, state.Status())
}

func (s *GameStateSuite) TestNewGameStateAllDimensions() {
	for dim := MinDimension; dim <= MaxDimension; dim++ {
		state, err := NewGameState(dim)
		s.Require().NoError(err)

		s.Len(state.Hounds, HoundCount(dim))
		s.True(state.Fox.InBounds(dim))
		s.True(state.Fox.IsDark(), "dim %d", dim)
		s.Equal(dim-1, state.Fox.Row)

		seen := map[Position]bool{}
		for _, pos := range state.Roster() {
			s.True(pos.InBounds(dim))
			s.False(seen[pos], "dim %d: duplicate %s", dim, pos)
			seen[pos] = true
		}
	}
}

func (s *GameStateSuite) TestNewGameStateRejectsDimension() {
	_, err := NewGameState(3)
	s.ErrorIs(err, ErrInvalidDimension)

	_, err = NewGameState(27)
	s.ErrorIs(err, ErrInvalidDimension)
}

func (s *GameStateSuite) TestRosterOrderIsHoundsThenFox() {
	state, _ := NewGameState(8)
	roster := state.Roster()

	s.Len(roster, 5)
	s.Equal(state.Hounds, roster[:4])
	s.Equal(state.Fox, roster[4])
}

func (s *GameStateSuite) TestPieceAt() {
	state, _ := NewGameState(8)

	s.Equal(Hound, state.PieceAt(Position{Row: 0, Col: 1}))
	s.Equal(Fox, state.PieceAt(Position{Row: 7, Col: 4}))
	s.Equal(NoPiece, state.PieceAt(Position{Row: 3, Col: 3}))
	s.True(state.Occupied(Position{Row: 0, Col: 7}))
	s.False(state.Occupied(Position{Row: 0, Col: 0}))
}

func (s *GameStateSuite) TestCloneIsIndependent() {
	state, _ := NewGameState(8)
	clone := state.Clone()

	clone.Hounds[0] = Position{Row: 1, Col: 0}
	clone.Fox = Position{Row: 6, Col: 3}
	clone.Turn = Hound

	s.Equal(Position{Row: 0, Col: 1}, state.Hounds[0])
	s.Equal(Position{Row: 7, Col: 4}, state.Fox)
	s.Equal(Fox, state.Turn)
}

func (s *GameStateSuite) TestPhaseFollowsOutcome() {
	state, _ := NewGameState(8)

	state.Turn = Hound
	s.Equal(PhaseAwaitingHoundMove, state.Phase())

	state.Outcome = StatusFoxWon
	s.Equal(PhaseFoxWon, state.Phase())
	s.True(state.IsOver())

	state.Outcome = StatusHoundWon
	s.Equal(PhaseHoundWon, state.Phase())
}

func (s *GameStateSuite) TestPieceKindHelpers() {
	s.Equal(Hound, Fox.Opponent())
	s.Equal(Fox, Hound.Opponent())
	s.Equal(byte('F'), Fox.Symbol())
	s.Equal(byte('H'), Hound.Symbol())
	s.Equal("Fox", Fox.String())
}

func (s *GameStateSuite) TestMoveString() {
	m := Move{From: Position{Row: 4, Col: 4}, To: Position{Row: 5, Col: 3}}
	s.Equal("E5-D6", m.String())
}

// Error taxonomy tests

func (s *GameStateSuite) TestMoveErrorUnwrapsToSentinel() {
	err := error(&MoveError{Reason: ReasonOccupied})
	s.ErrorIs(err, ErrOccupied)
	s.NotErrorIs(err, ErrOutOfBounds)
}

func (s *GameStateSuite) TestMoveErrorWithCause() {
	cause := &CoordinateError{Text: "C0", Reason: "outside the board", OutOfRange: true}
	err := error(&MoveError{Reason: ReasonOutOfBounds, Err: cause})

	s.ErrorIs(err, ErrOutOfBounds)
	s.ErrorIs(err, ErrInvalidCoordinate)
	s.Contains(err.Error(), "C0")
}

func (s *GameStateSuite) TestLoadErrorUnwrapsToSentinel() {
	err := error(&LoadError{Reason: LoadReasonTokenCountMismatch, Token: "B1"})
	s.ErrorIs(err, ErrTokenCountMismatch)
	s.Contains(err.Error(), "B1")
}

func (s *GameStateSuite) TestInvariantError() {
	err := error(&InvariantError{Err: ErrNoLegalMoves})
	s.True(IsInvariantViolation(err))
	s.ErrorIs(err, ErrNoLegalMoves)
	s.False(IsInvariantViolation(ErrNoLegalMoves))
	s.False(IsInvariantViolation(errors.New("other")))
}

func (s *GameStateSuite) TestValidateSaveName() {
	s.NoError(ValidateSaveName("game-1"))
	s.NoError(ValidateSaveName("My_Save"))
	s.ErrorIs(ValidateSaveName(""), ErrInvalidSaveName)
	s.ErrorIs(ValidateSaveName("../etc"), ErrInvalidSaveName)
	s.ErrorIs(ValidateSaveName("a b"), ErrInvalidSaveName)
}
