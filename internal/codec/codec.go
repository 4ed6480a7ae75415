// Package codec converts game states to and from their single-line text form,
// e.g. "8 F B1 D1 F1 H1 E8": dimension, side to move, Hounds in roster order,
// then the Fox.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/services/rules"
)

// Encode renders state as dimension, turn marker and positions separated by
// single spaces
func Encode(state *model.GameState) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(state.Dimension))
	b.WriteByte(' ')
	turn := state.Turn
	if turn == model.NoPiece {
		turn = model.Fox
	}
	b.WriteByte(turn.Symbol())
	for _, pos := range state.Roster() {
		b.WriteByte(' ')
		b.WriteString(pos.String())
	}
	return b.String()
}

// Decode parses text produced by Encode. The turn marker may be omitted, in
// which case the Fox is to move. The returned state is always freshly built and
// has its outcome evaluated.
func Decode(text string) (*model.GameState, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, &model.LoadError{Reason: model.LoadReasonBadDimension, Err: fmt.Errorf("empty input")}
	}

	dimension, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, &model.LoadError{Reason: model.LoadReasonBadDimension, Token: tokens[0], Err: err}
	}
	if err := model.ValidateDimension(dimension); err != nil {
		return nil, &model.LoadError{Reason: model.LoadReasonBadDimension, Token: tokens[0], Err: err}
	}
	tokens = tokens[1:]

	turn := model.Fox
	if len(tokens) > 0 && len(tokens[0]) == 1 {
		turn, err = parseTurn(tokens[0])
		if err != nil {
			return nil, err
		}
		tokens = tokens[1:]
	}

	want := model.PieceCount(dimension)
	if len(tokens) != want {
		return nil, &model.LoadError{
			Reason: model.LoadReasonTokenCountMismatch,
			Err:    fmt.Errorf("expected %d positions, got %d", want, len(tokens)),
		}
	}

	positions := make([]model.Position, 0, want)
	seen := make(map[model.Position]bool, want)
	for _, tok := range tokens {
		pos, err := model.ParsePosition(tok, dimension)
		if err != nil {
			return nil, &model.LoadError{Reason: model.LoadReasonBadCoordinate, Token: tok, Err: err}
		}
		if seen[pos] {
			return nil, &model.LoadError{Reason: model.LoadReasonDuplicatePosition, Token: tok}
		}
		seen[pos] = true
		positions = append(positions, pos)
	}

	fox := want - 1
	state := &model.GameState{
		Dimension: dimension,
		Hounds:    positions[:fox:fox],
		Fox:       positions[fox],
		Turn:      turn,
	}
	state.Outcome = rules.Evaluate(state)
	return state, nil
}

func parseTurn(token string) (model.PieceKind, error) {
	switch strings.ToUpper(token) {
	case "F":
		return model.Fox, nil
	case "H":
		return model.Hound, nil
	default:
		return model.NoPiece, &model.LoadError{Reason: model.LoadReasonBadTurn, Token: token}
	}
}
