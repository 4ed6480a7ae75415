package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/foxhound-go/internal/factory"
	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/testutil"
)

type SessionSuite struct {
	suite.Suite
	app    *factory.TestApp
	ctx    context.Context
	out    bytes.Buffer
	errOut bytes.Buffer
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.ctx = context.Background()
	s.out.Reset()
	s.errOut.Reset()
}

func (s *SessionSuite) play(state *model.GameState, input string, bots ...model.PieceKind) *model.GameState {
	session := NewSession(s.app.GameController, s.app.BotService, strings.NewReader(input), &s.out, &s.errOut, bots...)
	final, err := session.Run(s.ctx, state)
	s.Require().NoError(err)
	return final
}

func (s *SessionSuite) newGame() *model.GameState {
	state, err := s.app.GameController.NewGame(8)
	s.Require().NoError(err)
	return state
}

// Menu

func (s *SessionSuite) TestMoveThenExit() {
	final := s.play(s.newGame(), "1\nE8 D7\n5\n")

	s.Equal(testutil.MustPos("D7", 8), final.Fox)
	s.Equal(model.Hound, final.Turn)
	s.Contains(s.out.String(), "Fox to move\n\n1. Move\n2. AI Move\n3. Save\n4. Load\n5. Exit\n\nEnter 1 - 5:\n")
	s.Contains(s.out.String(), "Enter two positions between A1-H8:")
	s.Contains(s.out.String(), "7 ...F.... 7")
	s.Contains(s.out.String(), "Hounds to move")
}

func (s *SessionSuite) TestFancyBoard() {
	session := NewSession(s.app.GameController, s.app.BotService, strings.NewReader("5\n"), &s.out, &s.errOut).
		WithBoard(RenderFancyBoard)
	_, err := session.Run(s.ctx, s.newGame())
	s.Require().NoError(err)

	s.Contains(s.out.String(), "1 |   | H |   | H |   | H |   | H | 1\n")
}

func (s *SessionSuite) TestInvalidMenuEntryReprompts() {
	s.play(s.newGame(), "9\nabc\n\n5\n")

	s.Equal(3, strings.Count(s.out.String(), "Please enter valid number."))
}

func (s *SessionSuite) TestEndOfInputExits() {
	start := s.newGame()
	final := s.play(start, "")

	s.Equal(start, final)
}

func (s *SessionSuite) TestExitKeepsGameRunning() {
	final := s.play(s.newGame(), "5\n")
	s.False(final.IsOver())
}

// Moves

func (s *SessionSuite) TestMalformedPairReprompts() {
	final := s.play(s.newGame(), "1\nE8\nE8 D7 C6\nE8 D7\n5\n")

	s.Equal(2, strings.Count(s.errOut.String(), "ERROR: Please enter valid coordinate pair separated by space."))
	s.Equal(testutil.MustPos("D7", 8), final.Fox)
}

func (s *SessionSuite) TestIllegalMoveReturnsToMenu() {
	start := s.newGame()
	final := s.play(start, "1\nE8 E7\n1\nD1 C2\n5\n")

	s.Contains(s.errOut.String(), "ERROR: illegal move E8-E7: destination is not diagonally adjacent")
	s.Contains(s.errOut.String(), "ERROR: illegal move D1-C2: origin does not hold a piece of the side to move")
	s.Equal(start.Fox, final.Fox)
	s.Equal(model.Fox, final.Turn)
}

func (s *SessionSuite) TestAIMoveFromMenu() {
	final := s.play(s.newGame(), "2\n5\n")

	s.Contains(s.out.String(), "Fox moved E8-")
	s.Equal(model.Hound, final.Turn)
}

func (s *SessionSuite) TestWinningMoveEndsSession() {
	state := testutil.State(8, model.Fox, "C2", "F1", "H1", "A3", "E3")

	final := s.play(state, "1\nC2 B1\n")

	s.Equal(model.StatusFoxWon, final.Status())
	s.Contains(s.out.String(), "The Fox wins!")
}

// Bots

func (s *SessionSuite) TestBotSideAnswersAutomatically() {
	final := s.play(s.newGame(), "1\nE8 D7\n5\n", model.Hound)

	s.Contains(s.out.String(), "Hound moved")
	s.Equal(model.Fox, final.Turn)
}

func (s *SessionSuite) TestBotsPlayWholeGame() {
	final := s.play(s.newGame(), "", model.Fox, model.Hound)

	s.True(final.IsOver())
	s.Contains(s.out.String(), "win")
}

// Save and load

func (s *SessionSuite) TestSaveRejectsNonTxtThenWrites() {
	path := filepath.Join(s.T().TempDir(), "game.txt")

	s.play(s.newGame(), "1\nE8 F7\n3\ngame.dat\n"+path+"\n5\n")

	s.Contains(s.errOut.String(), "ERROR: not .txt file.")
	s.Contains(s.out.String(), "Game saved to "+path)
	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("8 H B1 D1 F1 H1 F7\n", string(data))
}

func (s *SessionSuite) TestLoadSwapsGame() {
	path := filepath.Join(s.T().TempDir(), "game.txt")
	s.Require().NoError(os.WriteFile(path, []byte("8 H B1 D1 F1 H1 D5\n"), 0o644))

	final := s.play(s.newGame(), "4\n"+path+"\n5\n")

	s.Contains(s.out.String(), "Game loaded from "+path)
	s.Equal(testutil.MustPos("D5", 8), final.Fox)
	s.Equal(model.Hound, final.Turn)
}

func (s *SessionSuite) TestLoadFailureKeepsGame() {
	dir := s.T().TempDir()
	bad := filepath.Join(dir, "bad.txt")
	s.Require().NoError(os.WriteFile(bad, []byte("8 B1 D1 F1 H1\n"), 0o644))

	start := s.newGame()
	final := s.play(start, "4\n"+bad+"\n4\n"+filepath.Join(dir, "missing.txt")+"\n5\n")

	s.Equal(2, strings.Count(s.errOut.String(), "ERROR: "))
	s.Contains(s.errOut.String(), "wrong number of pieces")
	s.Equal(start, final)
}
