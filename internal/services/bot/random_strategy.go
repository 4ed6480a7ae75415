package bot

import (
	"github.com/mcoot/foxhound-go/internal/dependencies/random"
	"github.com/mcoot/foxhound-go/internal/model"
)

// RandomStrategy uses the same tiers as GreedyStrategy but picks uniformly
// within the best non-empty one
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseMove returns a random move from the best tier
func (s *RandomStrategy) ChooseMove(state *model.GameState, side model.PieceKind, candidates []model.Move) model.Move {
	pool := candidates
	if winning, safe := tiers(state, side, candidates); len(winning) > 0 {
		pool = winning
	} else if len(safe) > 0 {
		pool = safe
	}
	return pool[s.random.Intn(len(pool))]
}
