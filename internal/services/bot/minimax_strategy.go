package bot

import (
	"math"

	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/services/rules"
)

const (
	// DefaultDepth is the search depth used when none is configured
	DefaultDepth = 4
	// MinDepth and MaxDepth bound the search depth
	MinDepth = 1
	MaxDepth = 8

	winScore = 100_000
)

// MinimaxStrategy searches a fixed number of plies with alpha-beta pruning.
// Scores are from the Fox's point of view; the Hounds minimise.
type MinimaxStrategy struct {
	depth int
}

// NewMinimaxStrategy creates a MinimaxStrategy, clamping depth into
// [MinDepth, MaxDepth]
func NewMinimaxStrategy(depth int) *MinimaxStrategy {
	return &MinimaxStrategy{depth: ClampDepth(depth)}
}

// ClampDepth bounds depth to the supported range
func ClampDepth(depth int) int {
	return max(MinDepth, min(depth, MaxDepth))
}

// Depth returns the configured search depth
func (s *MinimaxStrategy) Depth() int {
	return s.depth
}

// ChooseMove returns the best scoring candidate; ties keep the earliest
func (s *MinimaxStrategy) ChooseMove(state *model.GameState, side model.PieceKind, candidates []model.Move) model.Move {
	maximising := side == model.Fox
	best := candidates[0]
	bestScore := math.MinInt
	if !maximising {
		bestScore = math.MaxInt
	}
	alpha, beta := math.MinInt, math.MaxInt

	for _, move := range candidates {
		score := s.search(rules.Apply(state, move), s.depth-1, alpha, beta)
		if maximising && score > bestScore {
			best, bestScore = move, score
			alpha = max(alpha, score)
		} else if !maximising && score < bestScore {
			best, bestScore = move, score
			beta = min(beta, score)
		}
	}
	return best
}

func (s *MinimaxStrategy) search(state *model.GameState, depth, alpha, beta int) int {
	switch state.Status() {
	case model.StatusFoxWon:
		return winScore + depth // Sooner wins score higher
	case model.StatusHoundWon:
		return -winScore - depth
	}
	if depth <= 0 {
		return Evaluate(state)
	}

	moves := rules.LegalMoves(state, state.Turn)
	if state.Turn == model.Fox {
		best := math.MinInt
		for _, move := range moves {
			best = max(best, s.search(rules.Apply(state, move), depth-1, alpha, beta))
			alpha = max(alpha, best)
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, move := range moves {
		best = min(best, s.search(rules.Apply(state, move), depth-1, alpha, beta))
		beta = min(beta, best)
		if alpha >= beta {
			break
		}
	}
	return best
}

// Evaluate scores a non-terminal position for the Fox: the closer to row 0
// and the more squares it can reach, the better
func Evaluate(state *model.GameState) int {
	progress := state.Dimension - 1 - state.Fox.Row
	mobility := len(rules.PieceMoves(state, model.Fox, state.Fox))
	houndMobility := len(rules.LegalMoves(state, model.Hound))
	return 10*progress + 4*mobility - houndMobility
}
