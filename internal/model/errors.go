package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Coordinate and setup errors
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidDimension  = errors.New("board dimension must be between 4 and 26")

	// Move errors
	ErrNotYourPiece        = errors.New("origin does not hold a piece of the side to move")
	ErrNotAdjacentDiagonal = errors.New("destination is not diagonally adjacent")
	ErrOccupied            = errors.New("destination is occupied")
	ErrIllegalDirection    = errors.New("hounds cannot move backwards")
	ErrOutOfBounds         = errors.New("destination is outside the board")
	ErrGameAlreadyOver     = errors.New("game is already over")
	ErrNotYourTurn         = errors.New("not this side's turn")

	// Load errors
	ErrBadDimension       = errors.New("saved dimension is invalid")
	ErrBadTurn            = errors.New("saved turn marker is invalid")
	ErrTokenCountMismatch = errors.New("wrong number of pieces for the board dimension")
	ErrBadCoordinate      = errors.New("saved position is invalid")
	ErrDuplicatePosition  = errors.New("two pieces share a square")

	// AI errors
	ErrNoLegalMoves    = errors.New("no legal moves available")
	ErrUnknownStrategy = errors.New("unknown bot strategy")

	// Save slot errors
	ErrSaveNotFound    = errors.New("save not found")
	ErrInvalidSaveName = errors.New("save names may only contain letters, digits, '-' and '_'")
	ErrInvalidSavePath = errors.New("save files must have a .txt extension")
)

// CoordinateError reports position text that could not be parsed
type CoordinateError struct {
	Text       string
	Reason     string
	OutOfRange bool // well-formed, but outside the board
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate %q: %s", e.Text, e.Reason)
}

func (e *CoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}

// MoveReason is the reason code attached to an illegal move
type MoveReason string

const (
	ReasonNotYourPiece        MoveReason = "not_your_piece"
	ReasonNotAdjacentDiagonal MoveReason = "not_adjacent_diagonal"
	ReasonOccupied            MoveReason = "occupied"
	ReasonIllegalDirection    MoveReason = "illegal_direction"
	ReasonOutOfBounds         MoveReason = "out_of_bounds"
	ReasonGameAlreadyOver     MoveReason = "game_already_over"
)

var moveReasonErrors = map[MoveReason]error{
	ReasonNotYourPiece:        ErrNotYourPiece,
	ReasonNotAdjacentDiagonal: ErrNotAdjacentDiagonal,
	ReasonOccupied:            ErrOccupied,
	ReasonIllegalDirection:    ErrIllegalDirection,
	ReasonOutOfBounds:         ErrOutOfBounds,
	ReasonGameAlreadyOver:     ErrGameAlreadyOver,
}

// Sentinel returns the sentinel error for the reason
func (r MoveReason) Sentinel() error {
	return moveReasonErrors[r]
}

// MoveError is a recoverable illegal move
type MoveError struct {
	Reason MoveReason
	Move   Move
	Err    error // optional cause, e.g. a *CoordinateError
}

func (e *MoveError) Error() string {
	msg := string(e.Reason)
	if sentinel := e.Reason.Sentinel(); sentinel != nil {
		msg = sentinel.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("illegal move: %s: %v", msg, e.Err)
	}
	if e.Move == (Move{}) {
		return "illegal move: " + msg
	}
	return fmt.Sprintf("illegal move %s: %s", e.Move, msg)
}

func (e *MoveError) Unwrap() []error {
	errs := []error{}
	if sentinel := e.Reason.Sentinel(); sentinel != nil {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// LoadReason is the reason code attached to a rejected saved game
type LoadReason string

const (
	LoadReasonBadDimension       LoadReason = "bad_dimension"
	LoadReasonBadTurn            LoadReason = "bad_turn"
	LoadReasonTokenCountMismatch LoadReason = "token_count_mismatch"
	LoadReasonBadCoordinate      LoadReason = "bad_coordinate"
	LoadReasonDuplicatePosition  LoadReason = "duplicate_position"
)

var loadReasonErrors = map[LoadReason]error{
	LoadReasonBadDimension:       ErrBadDimension,
	LoadReasonBadTurn:            ErrBadTurn,
	LoadReasonTokenCountMismatch: ErrTokenCountMismatch,
	LoadReasonBadCoordinate:      ErrBadCoordinate,
	LoadReasonDuplicatePosition:  ErrDuplicatePosition,
}

// LoadError reports saved text that could not be decoded
type LoadError struct {
	Reason LoadReason
	Token  string
	Err    error
}

func (e *LoadError) Error() string {
	msg := string(e.Reason)
	if sentinel := loadReasonErrors[e.Reason]; sentinel != nil {
		msg = sentinel.Error()
	}
	if e.Token != "" {
		msg = fmt.Sprintf("%s (%q)", msg, e.Token)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return "load failed: " + msg
}

func (e *LoadError) Unwrap() []error {
	errs := []error{}
	if sentinel := loadReasonErrors[e.Reason]; sentinel != nil {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// InvariantError marks a state the rules should have made unreachable.
// It signals a bug rather than bad user input.
type InvariantError struct {
	Err error
}

func (e *InvariantError) Error() string {
	return "invariant violated: " + e.Err.Error()
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

// IsInvariantViolation reports whether err is (or wraps) an InvariantError
func IsInvariantViolation(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
