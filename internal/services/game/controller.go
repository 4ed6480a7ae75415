package game

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mcoot/foxhound-go/internal/codec"
	"github.com/mcoot/foxhound-go/internal/dependencies/clock"
	"github.com/mcoot/foxhound-go/internal/dependencies/random"
	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/services/rules"
	"github.com/mcoot/foxhound-go/internal/storage"
	"github.com/mcoot/foxhound-go/internal/storage/file"
)

// Controller manages the turn state machine and save slots.
//
// Game states are values: every operation takes the current state and returns
// a new one, leaving its input untouched, so a failed move never changes the
// caller's game.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  zerolog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger zerolog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With().Str("component", "game-controller").Logger(),
	}
}

// NewGame creates a game with the standard starting roster
func (c *Controller) NewGame(dimension int) (*model.GameState, error) {
	state, err := model.NewGameState(dimension)
	if err != nil {
		return nil, err
	}
	state.Outcome = rules.Evaluate(state)

	c.logger.Info().
		Int("dimension", dimension).
		Int("hounds", len(state.Hounds)).
		Str("fox", state.Fox.String()).
		Msg("game created")

	return state, nil
}

// TryMove parses a human move and commits it for the side to move.
// Coordinates that are well-formed but off the board are reported as an
// out-of-bounds move; malformed text is returned as a *model.CoordinateError.
func (c *Controller) TryMove(state *model.GameState, originText, destinationText string) (*model.GameState, *model.MoveResult, error) {
	if isFinished(state) {
		return nil, nil, &model.MoveError{Reason: model.ReasonGameAlreadyOver}
	}

	from, err := parseMoveCoordinate(originText, state.Dimension)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseMoveCoordinate(destinationText, state.Dimension)
	if err != nil {
		return nil, nil, err
	}

	return c.ApplyMove(state, model.Move{From: from, To: to})
}

func parseMoveCoordinate(text string, dimension int) (model.Position, error) {
	pos, err := model.ParsePosition(text, dimension)
	if err == nil {
		return pos, nil
	}

	var ce *model.CoordinateError
	if errors.As(err, &ce) && ce.OutOfRange {
		return model.Position{}, &model.MoveError{Reason: model.ReasonOutOfBounds, Err: err}
	}
	return model.Position{}, err
}

// ApplyMove validates move for the side to move and returns the resulting
// state. It is the single commit path for human and AI moves.
func (c *Controller) ApplyMove(state *model.GameState, move model.Move) (*model.GameState, *model.MoveResult, error) {
	if isFinished(state) {
		return nil, nil, &model.MoveError{Reason: model.ReasonGameAlreadyOver, Move: move}
	}

	side := state.Turn
	if err := rules.CheckMove(state, side, move.From, move.To); err != nil {
		c.logger.Debug().
			Str("side", side.String()).
			Str("move", move.String()).
			Err(err).
			Msg("move rejected")
		return nil, nil, err
	}

	next := rules.Apply(state, move)
	result := &model.MoveResult{
		Piece:  side,
		Move:   move,
		Status: next.Status(),
		Next:   next.Turn,
	}

	c.logger.Info().
		Str("side", side.String()).
		Str("move", move.String()).
		Str("status", string(result.Status)).
		Msg("move applied")
	if next.IsOver() {
		c.logger.Info().Str("status", string(result.Status)).Msg("game over")
	}

	return next, result, nil
}

// isFinished judges the board itself rather than the stored Outcome, so a
// hand-built state agrees with Status.
func isFinished(state *model.GameState) bool {
	return rules.Evaluate(state) != model.StatusContinue
}

// Status re-evaluates the outcome of state
func (c *Controller) Status(state *model.GameState) model.Status {
	return rules.Evaluate(state)
}

// Encode returns the text form of state
func (c *Controller) Encode(state *model.GameState) string {
	return codec.Encode(state)
}

// Decode builds a fresh state from text. Nothing is returned on failure, so
// the caller's current game stays in place.
func (c *Controller) Decode(text string) (*model.GameState, error) {
	state, err := codec.Decode(text)
	if err != nil {
		c.logger.Debug().Err(err).Msg("decode failed")
		return nil, err
	}
	return state, nil
}

// Save stores state under name, generating a name when it is empty
func (c *Controller) Save(ctx context.Context, name string, state *model.GameState) (*model.SavedGame, error) {
	if name == "" {
		name = "game-" + c.random.String(8, random.NameAlphabet)
	}
	if err := model.ValidateSaveName(name); err != nil {
		return nil, err
	}

	save := &model.SavedGame{
		Name:    name,
		State:   state.Clone(),
		SavedAt: c.clock.Now(),
	}
	if err := c.storage.SaveGame(ctx, save); err != nil {
		c.logger.Error().Str("save", name).Err(err).Msg("failed to save game")
		return nil, err
	}

	c.logger.Info().Str("save", name).Str("state", codec.Encode(state)).Msg("game saved")
	return save, nil
}

// Load returns the game stored under name
func (c *Controller) Load(ctx context.Context, name string) (*model.GameState, error) {
	save, err := c.storage.GetGame(ctx, name)
	if err != nil {
		return nil, err
	}

	c.logger.Info().Str("save", name).Str("status", string(save.State.Status())).Msg("game loaded")
	return save.State, nil
}

// ListSaves returns every save slot sorted by name
func (c *Controller) ListSaves(ctx context.Context) ([]*model.SavedGame, error) {
	return c.storage.ListGames(ctx)
}

// DeleteSave removes a save slot
func (c *Controller) DeleteSave(ctx context.Context, name string) error {
	if err := c.storage.DeleteGame(ctx, name); err != nil {
		return err
	}
	c.logger.Info().Str("save", name).Msg("save deleted")
	return nil
}

// Export writes state to a .txt file outside the save store
func (c *Controller) Export(state *model.GameState, path string) error {
	if err := file.WriteState(path, state); err != nil {
		return err
	}
	c.logger.Info().Str("path", path).Msg("game exported")
	return nil
}

// Import reads a game from a .txt file
func (c *Controller) Import(path string) (*model.GameState, error) {
	state, err := file.ReadState(path)
	if err != nil {
		return nil, err
	}
	c.logger.Info().Str("path", path).Msg("game imported")
	return state, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(dimension int) (*model.GameState, error)
	TryMove(state *model.GameState, originText, destinationText string) (*model.GameState, *model.MoveResult, error)
	ApplyMove(state *model.GameState, move model.Move) (*model.GameState, *model.MoveResult, error)
	Status(state *model.GameState) model.Status
	Encode(state *model.GameState) string
	Decode(text string) (*model.GameState, error)
	Save(ctx context.Context, name string, state *model.GameState) (*model.SavedGame, error)
	Load(ctx context.Context, name string) (*model.GameState, error)
	ListSaves(ctx context.Context) ([]*model.SavedGame, error)
	DeleteSave(ctx context.Context, name string) error
	Export(state *model.GameState, path string) error
	Import(path string) (*model.GameState, error)
}

var _ ControllerInterface = (*Controller)(nil)
