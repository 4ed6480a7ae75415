package bot

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/mcoot/foxhound-go/internal/dependencies/random"
	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/services/game"
	"github.com/mcoot/foxhound-go/internal/services/rules"
)

// MaxBotIterations is a safety limit for the ProcessBotTurns loop
const MaxBotIterations = 1000

// Service selects and plays AI moves
type Service struct {
	gameController  game.ControllerInterface
	strategies      map[string]Strategy
	defaultStrategy string
	logger          zerolog.Logger
}

// NewService creates a new bot Service. defaultStrategy must be a key of
// strategies.
func NewService(
	gameController game.ControllerInterface,
	strategies map[string]Strategy,
	defaultStrategy string,
	logger zerolog.Logger,
) *Service {
	return &Service{
		gameController:  gameController,
		strategies:      strategies,
		defaultStrategy: defaultStrategy,
		logger:          logger.With().Str("component", "bot-service").Logger(),
	}
}

// DefaultStrategies returns every built-in strategy keyed by name
func DefaultStrategies(rnd random.Random, depth int) map[string]Strategy {
	return map[string]Strategy{
		model.BotStrategyGreedy:  NewGreedyStrategy(),
		model.BotStrategyRandom:  NewRandomStrategy(rnd),
		model.BotStrategyMinimax: NewMinimaxStrategy(depth),
	}
}

// Strategies returns the registered strategy names, sorted
func (s *Service) Strategies() []string {
	names := make([]string, 0, len(s.strategies))
	for name := range s.strategies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultStrategy returns the name used by SelectMove and PlayTurn
func (s *Service) DefaultStrategy() string {
	return s.defaultStrategy
}

// SelectMove chooses a move for side with the default strategy
func (s *Service) SelectMove(state *model.GameState, side model.PieceKind) (model.Move, error) {
	return s.SelectMoveWith(state, side, s.defaultStrategy)
}

// SelectMoveWith chooses a move for side with the named strategy
func (s *Service) SelectMoveWith(state *model.GameState, side model.PieceKind, strategyName string) (model.Move, error) {
	strategy, ok := s.strategies[strategyName]
	if !ok {
		return model.Move{}, fmt.Errorf("%w: %q", model.ErrUnknownStrategy, strategyName)
	}
	if rules.Evaluate(state) != model.StatusContinue {
		return model.Move{}, model.ErrGameAlreadyOver
	}
	if side != state.Turn {
		return model.Move{}, model.ErrNotYourTurn
	}

	candidates := rules.LegalMoves(state, side)
	if len(candidates) == 0 {
		err := &model.InvariantError{Err: fmt.Errorf("%s to move in a running game: %w", side, model.ErrNoLegalMoves)}
		s.logger.Error().Err(err).Str("side", side.String()).Msg("no candidate moves")
		return model.Move{}, err
	}

	move := strategy.ChooseMove(state, side, candidates)
	s.logger.Debug().
		Str("strategy", strategyName).
		Str("side", side.String()).
		Int("candidates", len(candidates)).
		Str("move", move.String()).
		Msg("bot selected move")

	return move, nil
}

// PlayTurn selects a move for the side to move and commits it
func (s *Service) PlayTurn(ctx context.Context, state *model.GameState) (*model.GameState, *model.MoveResult, error) {
	return s.PlayTurnWith(ctx, state, s.defaultStrategy)
}

// PlayTurnWith is PlayTurn with the named strategy
func (s *Service) PlayTurnWith(ctx context.Context, state *model.GameState, strategyName string) (*model.GameState, *model.MoveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	move, err := s.SelectMoveWith(state, state.Turn, strategyName)
	if err != nil {
		return nil, nil, err
	}
	return s.gameController.ApplyMove(state, move)
}

// ProcessBotTurns plays moves for as long as the side to move is one of bots
// and the game is running. It returns the final state and every move played.
func (s *Service) ProcessBotTurns(ctx context.Context, state *model.GameState, bots ...model.PieceKind) (*model.GameState, []*model.MoveResult, error) {
	var results []*model.MoveResult

	for range MaxBotIterations {
		if rules.Evaluate(state) != model.StatusContinue || !slices.Contains(bots, state.Turn) {
			break
		}

		next, result, err := s.PlayTurn(ctx, state)
		if err != nil {
			return state, results, err
		}
		state = next
		results = append(results, result)
	}

	return state, results, nil
}
