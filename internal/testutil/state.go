package testutil

import (
	"fmt"

	"github.com/mcoot/foxhound-go/internal/model"
)

// State builds a game from position text, e.g. State(8, model.Fox, "E5", "B1", "D1").
// The outcome is left as Continue; callers that need it evaluated should run
// rules.Evaluate themselves. It panics on bad input since it is only used with
// literals in tests.
func State(dimension int, turn model.PieceKind, fox string, hounds ...string) *model.GameState {
	state := &model.GameState{
		Dimension: dimension,
		Fox:       MustPos(fox, dimension),
		Hounds:    make([]model.Position, 0, len(hounds)),
		Turn:      turn,
		Outcome:   model.StatusContinue,
	}
	for _, h := range hounds {
		state.Hounds = append(state.Hounds, MustPos(h, dimension))
	}
	return state
}

// MustPos parses a position or panics
func MustPos(text string, dimension int) model.Position {
	pos, err := model.ParsePosition(text, dimension)
	if err != nil {
		panic(fmt.Sprintf("testutil: %v", err))
	}
	return pos
}

// MustMove parses "E5-D6" style moves or panics
func MustMove(from, to string, dimension int) model.Move {
	return model.Move{From: MustPos(from, dimension), To: MustPos(to, dimension)}
}
