package rules

import (
	"github.com/mcoot/foxhound-go/internal/model"
)

// Evaluate determines whether either side has won.
//
// The Fox wins on reaching row 0, or when the Hounds are to move and none of
// them can. The Hounds win when the Fox is to move and is fully trapped.
func Evaluate(state *model.GameState) model.Status {
	if state.Fox.Row == 0 {
		return model.StatusFoxWon
	}

	switch state.Turn {
	case model.Fox:
		if !HasLegalMove(state, model.Fox) {
			return model.StatusHoundWon
		}
	case model.Hound:
		if !HasLegalMove(state, model.Hound) {
			return model.StatusFoxWon
		}
	}
	return model.StatusContinue
}

// Apply returns the state after move, with the turn flipped and the outcome
// re-evaluated. The move must already have passed CheckMove; state is not
// modified.
func Apply(state *model.GameState, move model.Move) *model.GameState {
	next := state.Clone()

	if next.Fox == move.From {
		next.Fox = move.To
	} else if i := next.HoundIndex(move.From); i >= 0 {
		next.Hounds[i] = move.To
	}

	next.Turn = state.Turn.Opponent()
	next.Outcome = Evaluate(next)
	return next
}
