package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mcoot/foxhound-go/internal/codec"
	"github.com/mcoot/foxhound-go/internal/model"
)

// BoardRenderer draws a game board as text
type BoardRenderer func(w io.Writer, state *model.GameState)

// BoardStyle picks the boxed renderer when fancy is set
func BoardStyle(fancy bool) BoardRenderer {
	if fancy {
		return RenderFancyBoard
	}
	return RenderBoard
}

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
	render BoardRenderer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut, render: RenderBoard}
}

// WithBoard sets how boards are drawn in text output
func (o *Output) WithBoard(render BoardRenderer) *Output {
	o.render = render
	return o
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
				"code":    ErrorCode(err),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "ERROR: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

// ErrorCode maps an error to a stable machine-readable code
func ErrorCode(err error) string {
	var me *model.MoveError
	if errors.As(err, &me) {
		return string(me.Reason)
	}
	var le *model.LoadError
	if errors.As(err, &le) {
		return string(le.Reason)
	}

	switch {
	case model.IsInvariantViolation(err):
		return "invariant_violation"
	case errors.Is(err, model.ErrInvalidCoordinate):
		return "invalid_coordinate"
	case errors.Is(err, model.ErrInvalidDimension):
		return "invalid_dimension"
	case errors.Is(err, model.ErrGameAlreadyOver):
		return "game_already_over"
	case errors.Is(err, model.ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, model.ErrSaveNotFound):
		return "save_not_found"
	case errors.Is(err, model.ErrInvalidSaveName):
		return "invalid_save_name"
	case errors.Is(err, model.ErrInvalidSavePath):
		return "invalid_save_path"
	case errors.Is(err, model.ErrUnknownStrategy):
		return "unknown_strategy"
	default:
		return "error"
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameView:
		o.printGame(v)
	case MoveView:
		o.printMove(v)
	case SaveView:
		o.printSave(v)
	case []SaveView:
		o.printSaves(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameView is the printable form of a game
type GameView struct {
	Save      string   `json:"save,omitempty"`
	Dimension int      `json:"dimension"`
	Turn      string   `json:"turn"`
	Phase     string   `json:"phase"`
	Status    string   `json:"status"`
	Fox       string   `json:"fox"`
	Hounds    []string `json:"hounds"`
	State     string   `json:"state"`

	board *model.GameState
}

// MoveView describes a committed move and the game after it
type MoveView struct {
	Piece  string   `json:"piece"`
	Move   string   `json:"move"`
	Status string   `json:"status"`
	Next   string   `json:"next"`
	Game   GameView `json:"game"`
}

// SaveView describes a save slot
type SaveView struct {
	Name      string    `json:"name"`
	SavedAt   time.Time `json:"saved_at"`
	Dimension int       `json:"dimension"`
	Turn      string    `json:"turn"`
	Status    string    `json:"status"`
	State     string    `json:"state"`
}

// NewGameView builds the view of state, optionally labelled with its save slot
func NewGameView(save string, state *model.GameState) GameView {
	hounds := make([]string, len(state.Hounds))
	for i, h := range state.Hounds {
		hounds[i] = h.String()
	}
	return GameView{
		Save:      save,
		Dimension: state.Dimension,
		Turn:      state.Turn.String(),
		Phase:     string(state.Phase()),
		Status:    string(state.Status()),
		Fox:       state.Fox.String(),
		Hounds:    hounds,
		State:     codec.Encode(state),
		board:     state,
	}
}

// NewMoveView builds the view of a committed move
func NewMoveView(save string, result *model.MoveResult, next *model.GameState) MoveView {
	return MoveView{
		Piece:  result.Piece.String(),
		Move:   result.Move.String(),
		Status: string(result.Status),
		Next:   result.Next.String(),
		Game:   NewGameView(save, next),
	}
}

// NewSaveView builds the view of a save slot
func NewSaveView(save *model.SavedGame) SaveView {
	return SaveView{
		Name:      save.Name,
		SavedAt:   save.SavedAt,
		Dimension: save.State.Dimension,
		Turn:      save.State.Turn.String(),
		Status:    string(save.State.Status()),
		State:     codec.Encode(save.State),
	}
}

func (o *Output) printGame(g GameView) {
	if g.Save != "" {
		fmt.Fprintf(o.out, "Game: %s\n", g.Save)
	}
	if g.board != nil {
		fmt.Fprintln(o.out)
		o.render(o.out, g.board)
		fmt.Fprintln(o.out)
	}
	fmt.Fprintln(o.out, StatusLine(g.Status, g.Turn))
}

func (o *Output) printMove(m MoveView) {
	fmt.Fprintf(o.out, "%s moved %s\n", m.Piece, m.Move)
	o.printGame(m.Game)
}

func (o *Output) printSave(s SaveView) {
	fmt.Fprintf(o.out, "Saved %s (%s)\n", s.Name, s.State)
}

func (o *Output) printSaves(saves []SaveView) {
	if len(saves) == 0 {
		fmt.Fprintln(o.out, "No saved games")
		return
	}
	for _, s := range saves {
		fmt.Fprintf(o.out, "%-20s %2dx%-2d %-10s %s\n",
			s.Name, s.Dimension, s.Dimension, StatusLine(s.Status, s.Turn), s.SavedAt.Local().Format(time.DateTime))
	}
}

// StatusLine describes who is to move, or who won
func StatusLine(status, turn string) string {
	switch model.Status(status) {
	case model.StatusFoxWon:
		return "The Fox wins!"
	case model.StatusHoundWon:
		return "The Hounds win!"
	}
	if turn == model.Hound.String() {
		return "Hounds to move"
	}
	return "Fox to move"
}

// RenderBoard prints the board with column letters above and below and row
// numbers on both sides, zero-padded on boards of ten or more
func RenderBoard(w io.Writer, state *model.GameState) {
	dim := state.Dimension
	margin := "  "
	if dim >= 10 {
		margin = "   "
	}

	var header strings.Builder
	header.WriteString(margin)
	for col := 0; col < dim; col++ {
		header.WriteByte(byte('A' + col))
	}
	header.WriteString(margin)

	fmt.Fprintln(w, header.String())
	fmt.Fprintln(w)
	for row := 0; row < dim; row++ {
		label := fmt.Sprintf("%d", row+1)
		if dim >= 10 {
			label = fmt.Sprintf("%02d", row+1)
		}

		line := make([]byte, dim)
		for col := 0; col < dim; col++ {
			line[col] = state.PieceAt(model.Position{Row: row, Col: col}).Symbol()
		}
		fmt.Fprintf(w, "%s %s %s\n", label, line, label)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, header.String())
}

// RenderFancyBoard prints the board as a grid of boxed cells, framed by
// column letters and row numbers like RenderBoard
func RenderFancyBoard(w io.Writer, state *model.GameState) {
	dim := state.Dimension
	margin := "  "
	if dim >= 10 {
		margin = "   "
	}

	var header strings.Builder
	header.WriteString(margin + "  ")
	for col := 0; col < dim; col++ {
		header.WriteByte(byte('A' + col))
		header.WriteString("   ")
	}
	separator := margin + "|" + strings.Repeat("===|", dim)

	fmt.Fprintln(w, header.String())
	for row := 0; row < dim; row++ {
		label := fmt.Sprintf("%d", row+1)
		if dim >= 10 {
			label = fmt.Sprintf("%02d", row+1)
		}

		var line strings.Builder
		line.WriteString(label + " |")
		for col := 0; col < dim; col++ {
			symbol := state.PieceAt(model.Position{Row: row, Col: col}).Symbol()
			if symbol == model.NoPiece.Symbol() {
				symbol = ' '
			}
			line.WriteByte(' ')
			line.WriteByte(symbol)
			line.WriteString(" |")
		}
		line.WriteString(" " + label)

		fmt.Fprintln(w, separator)
		fmt.Fprintln(w, line.String())
	}
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, header.String())
}
