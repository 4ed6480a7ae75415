package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/testutil"
)

type OutputSuite struct {
	suite.Suite
	out    bytes.Buffer
	errOut bytes.Buffer
}

func TestOutputSuite(t *testing.T) {
	suite.Run(t, new(OutputSuite))
}

func (s *OutputSuite) SetupTest() {
	s.out.Reset()
	s.errOut.Reset()
}

// Board rendering

func (s *OutputSuite) TestRenderStandardBoard() {
	state, err := model.NewGameState(8)
	s.Require().NoError(err)

	var buf bytes.Buffer
	RenderBoard(&buf, state)

	expected := "  ABCDEFGH  \n" +
		"\n" +
		"1 .H.H.H.H 1\n" +
		"2 ........ 2\n" +
		"3 ........ 3\n" +
		"4 ........ 4\n" +
		"5 ........ 5\n" +
		"6 ........ 6\n" +
		"7 ........ 7\n" +
		"8 ....F... 8\n" +
		"\n" +
		"  ABCDEFGH  \n"
	s.Equal(expected, buf.String())
}

func (s *OutputSuite) TestRenderLargeBoardPadsRowNumbers() {
	state, err := model.NewGameState(10)
	s.Require().NoError(err)

	var buf bytes.Buffer
	RenderBoard(&buf, state)
	text := buf.String()

	s.Contains(text, "   ABCDEFGHIJ   \n")
	s.Contains(text, "01 .H.H.H.H.H 01\n")
	s.Contains(text, "09 .......... 09\n")
	s.Contains(text, "10 ......F... 10\n")
}

func (s *OutputSuite) TestRenderFancyBoard() {
	state, err := model.NewGameState(4)
	s.Require().NoError(err)

	var buf bytes.Buffer
	RenderFancyBoard(&buf, state)

	expected := "    A   B   C   D   \n" +
		"  |===|===|===|===|\n" +
		"1 |   | H |   | H | 1\n" +
		"  |===|===|===|===|\n" +
		"2 |   |   |   |   | 2\n" +
		"  |===|===|===|===|\n" +
		"3 |   |   |   |   | 3\n" +
		"  |===|===|===|===|\n" +
		"4 |   |   | F |   | 4\n" +
		"  |===|===|===|===|\n" +
		"    A   B   C   D   \n"
	s.Equal(expected, buf.String())
}

func (s *OutputSuite) TestRenderFancyLargeBoardPadsRowNumbers() {
	state, err := model.NewGameState(10)
	s.Require().NoError(err)

	var buf bytes.Buffer
	RenderFancyBoard(&buf, state)
	text := buf.String()

	s.True(strings.HasPrefix(text, "     A   B   C"))
	s.Contains(text, "   |===|===|")
	s.Contains(text, "01 |   | H |")
	s.Contains(text, "|   | 10\n")
}

func (s *OutputSuite) TestPrintGameUsesChosenBoard() {
	state, err := model.NewGameState(8)
	s.Require().NoError(err)

	NewOutput("text", &s.out, &s.errOut).WithBoard(BoardStyle(true)).Print(NewGameView("slot", state))

	s.Contains(s.out.String(), "1 |   | H |   | H |   | H |   | H | 1\n")
	s.NotContains(s.out.String(), ".H.H")
}

// Text output

func (s *OutputSuite) TestPrintGameText() {
	state := testutil.State(8, model.Hound, "D7", "B1", "D1", "F1", "H1")

	NewOutput("text", &s.out, &s.errOut).Print(NewGameView("slot", state))

	s.Contains(s.out.String(), "Game: slot\n")
	s.Contains(s.out.String(), "7 ...F.... 7\n")
	s.Contains(s.out.String(), "Hounds to move\n")
}

func (s *OutputSuite) TestPrintEmptySaveList() {
	NewOutput("text", &s.out, &s.errOut).Print([]SaveView{})
	s.Equal("No saved games\n", s.out.String())
}

func (s *OutputSuite) TestStatusLine() {
	s.Equal("Fox to move", StatusLine(string(model.StatusContinue), "Fox"))
	s.Equal("Hounds to move", StatusLine(string(model.StatusContinue), "Hound"))
	s.Equal("The Fox wins!", StatusLine(string(model.StatusFoxWon), "Hound"))
	s.Equal("The Hounds win!", StatusLine(string(model.StatusHoundWon), "Fox"))
}

func (s *OutputSuite) TestPrintErrorText() {
	NewOutput("text", &s.out, &s.errOut).PrintError(model.ErrSaveNotFound)
	s.Equal("ERROR: save not found\n", s.errOut.String())
	s.Empty(s.out.String())
}

// JSON output

func (s *OutputSuite) TestPrintGameJSON() {
	state := testutil.State(8, model.Fox, "E8", "B1", "D1", "F1", "H1")

	NewOutput("json", &s.out, &s.errOut).Print(NewGameView("", state))

	var view GameView
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &view))
	s.Equal(8, view.Dimension)
	s.Equal("Fox", view.Turn)
	s.Equal("E8", view.Fox)
	s.Equal([]string{"B1", "D1", "F1", "H1"}, view.Hounds)
	s.Equal("8 F B1 D1 F1 H1 E8", view.State)
	s.Equal(string(model.PhaseAwaitingFoxMove), view.Phase)
	s.Empty(view.Save)
}

func (s *OutputSuite) TestPrintSaveJSON() {
	save := &model.SavedGame{
		Name:    "slot",
		State:   testutil.State(8, model.Hound, "D7", "B1", "D1", "F1", "H1"),
		SavedAt: time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC),
	}

	NewOutput("json", &s.out, &s.errOut).Print([]SaveView{NewSaveView(save)})

	var views []SaveView
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &views))
	s.Require().Len(views, 1)
	s.Equal("slot", views[0].Name)
	s.Equal("8 H B1 D1 F1 H1 D7", views[0].State)
	s.True(save.SavedAt.Equal(views[0].SavedAt))
}

func (s *OutputSuite) TestPrintErrorJSONCarriesCode() {
	out := NewOutput("json", &s.out, &s.errOut)

	out.PrintError(&model.MoveError{Reason: model.ReasonOccupied})
	var payload struct {
		Error struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(s.errOut.Bytes(), &payload))
	s.Equal("occupied", payload.Error.Code)
	s.Contains(payload.Error.Message, "destination is occupied")
}

func (s *OutputSuite) TestErrorCodes() {
	s.Equal("bad_turn", ErrorCode(&model.LoadError{Reason: model.LoadReasonBadTurn}))
	s.Equal("save_not_found", ErrorCode(model.ErrSaveNotFound))
	s.Equal("invalid_save_path", ErrorCode(model.ErrInvalidSavePath))
	s.Equal("invariant_violation", ErrorCode(&model.InvariantError{Err: model.ErrNoLegalMoves}))
	s.Equal("error", ErrorCode(bytes.ErrTooLarge))
}
