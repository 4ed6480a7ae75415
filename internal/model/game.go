package model

// PieceKind identifies which side a piece belongs to
type PieceKind int

const (
	NoPiece PieceKind = iota
	Fox
	Hound
)

// String returns the display name of the piece kind
func (k PieceKind) String() string {
	switch k {
	case Fox:
		return "Fox"
	case Hound:
		return "Hound"
	default:
		return "None"
	}
}

// Symbol returns the single-letter marker used on boards and in saved games
func (k PieceKind) Symbol() byte {
	switch k {
	case Fox:
		return 'F'
	case Hound:
		return 'H'
	default:
		return '.'
	}
}

// Opponent returns the other side
func (k PieceKind) Opponent() PieceKind {
	switch k {
	case Fox:
		return Hound
	case Hound:
		return Fox
	default:
		return NoPiece
	}
}

// Status is the externally visible result of a game
type Status string

const (
	StatusContinue Status = "continue"
	StatusFoxWon   Status = "fox_won"
	StatusHoundWon Status = "hound_won"
)

// Phase is the state of the turn state machine
type Phase string

const (
	PhaseAwaitingFoxMove   Phase = "awaiting_fox_move"
	PhaseAwaitingHoundMove Phase = "awaiting_hound_move"
	PhaseFoxWon            Phase = "fox_won"
	PhaseHoundWon          Phase = "hound_won"
)

// GameState represents a single game of Fox and Hound
type GameState struct {
	Dimension int
	Hounds    []Position // Stable order, identity only
	Fox       Position
	Turn      PieceKind // Side to move (or that would move, once the game is over)
	Outcome   Status
}

// NewGameState creates a game with the standard starting roster.
// Hounds sit on the dark squares of row 0; the Fox starts on the far edge.
func NewGameState(dimension int) (*GameState, error) {
	if err := ValidateDimension(dimension); err != nil {
		return nil, err
	}

	hounds := make([]Position, 0, HoundCount(dimension))
	for col := 1; col < dimension && len(hounds) < HoundCount(dimension); col += 2 {
		hounds = append(hounds, Position{Row: 0, Col: col})
	}

	fox := Position{Row: dimension - 1, Col: dimension / 2}
	if !fox.IsDark() {
		fox.Col++
	}

	return &GameState{
		Dimension: dimension,
		Hounds:    hounds,
		Fox:       fox,
		Turn:      Fox,
		Outcome:   StatusContinue,
	}, nil
}

// Phase returns the current state machine phase
func (g *GameState) Phase() Phase {
	switch g.Outcome {
	case StatusFoxWon:
		return PhaseFoxWon
	case StatusHoundWon:
		return PhaseHoundWon
	}
	if g.Turn == Hound {
		return PhaseAwaitingHoundMove
	}
	return PhaseAwaitingFoxMove
}

// Status returns Continue, FoxWon or HoundWon
func (g *GameState) Status() Status {
	if g.Outcome == "" {
		return StatusContinue
	}
	return g.Outcome
}

// IsOver returns true once a side has won
func (g *GameState) IsOver() bool {
	return g.Status() != StatusContinue
}

// Roster returns all piece positions, Hounds first in stored order, Fox last
func (g *GameState) Roster() []Position {
	roster := make([]Position, 0, len(g.Hounds)+1)
	roster = append(roster, g.Hounds...)
	return append(roster, g.Fox)
}

// HoundIndex returns the index of the Hound at pos, or -1
func (g *GameState) HoundIndex(pos Position) int {
	for i, h := range g.Hounds {
		if h == pos {
			return i
		}
	}
	return -1
}

// PieceAt returns the kind of piece on pos, or NoPiece if empty
func (g *GameState) PieceAt(pos Position) PieceKind {
	if g.Fox == pos {
		return Fox
	}
	if g.HoundIndex(pos) >= 0 {
		return Hound
	}
	return NoPiece
}

// Occupied returns true if any piece stands on pos
func (g *GameState) Occupied(pos Position) bool {
	return g.PieceAt(pos) != NoPiece
}

// Clone returns a deep copy that shares no slices with g
func (g *GameState) Clone() *GameState {
	hounds := make([]Position, len(g.Hounds))
	copy(hounds, g.Hounds)
	clone := *g
	clone.Hounds = hounds
	return &clone
}

// Move is a single diagonal step of one piece
type Move struct {
	From Position
	To   Position
}

// String returns the move as "E8-D7"
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// MoveResult describes what an applied move changed
type MoveResult struct {
	Piece  PieceKind
	Move   Move
	Status Status
	Next   PieceKind // Side to move after this one
}
