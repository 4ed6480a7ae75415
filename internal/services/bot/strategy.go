package bot

import (
	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/services/rules"
)

// Strategy defines how a bot picks one move out of the legal candidates
type Strategy interface {
	// ChooseMove selects one of candidates, which is never empty and is in the
	// stable enumeration order of rules.LegalMoves
	ChooseMove(state *model.GameState, side model.PieceKind, candidates []model.Move) model.Move
}

// winFor returns the status that means side has won
func winFor(side model.PieceKind) model.Status {
	if side == model.Fox {
		return model.StatusFoxWon
	}
	return model.StatusHoundWon
}

// tiers splits candidates into moves that win at once and moves after which
// the opponent has no immediately winning reply. Both keep candidate order.
func tiers(state *model.GameState, side model.PieceKind, candidates []model.Move) (winning, safe []model.Move) {
	ours, theirs := winFor(side), winFor(side.Opponent())

	for _, move := range candidates {
		next := rules.Apply(state, move)
		switch next.Status() {
		case ours:
			winning = append(winning, move)
			continue
		case theirs:
			continue
		}

		if !opponentCanWin(next, theirs) {
			safe = append(safe, move)
		}
	}
	return winning, safe
}

func opponentCanWin(state *model.GameState, theirs model.Status) bool {
	for _, reply := range rules.LegalMoves(state, state.Turn) {
		if rules.Apply(state, reply).Status() == theirs {
			return true
		}
	}
	return false
}

// GreedyStrategy takes an immediate win, else the first move that does not
// hand the opponent one, else the first legal move
type GreedyStrategy struct{}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy() *GreedyStrategy {
	return &GreedyStrategy{}
}

// ChooseMove picks deterministically from the best non-empty tier
func (s *GreedyStrategy) ChooseMove(state *model.GameState, side model.PieceKind, candidates []model.Move) model.Move {
	winning, safe := tiers(state, side, candidates)
	switch {
	case len(winning) > 0:
		return winning[0]
	case len(safe) > 0:
		return safe[0]
	default:
		return candidates[0]
	}
}
