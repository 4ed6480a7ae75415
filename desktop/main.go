package main

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/mcoot/foxhound-go/internal/factory"
	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/services/rules"
)

const (
	boardPixels  = 640
	headerHeight = 60
	footerHeight = 40
	screenWidth  = boardPixels
	screenHeight = headerHeight + boardPixels + footerHeight
	saveSlot     = "desktop"
)

var (
	lightSquare  = color.RGBA{240, 217, 181, 255}
	darkSquare   = color.RGBA{120, 80, 50, 255}
	selectedTint = color.RGBA{90, 160, 90, 255}
	targetTint   = color.RGBA{150, 200, 120, 255}
	foxColor     = color.RGBA{230, 110, 20, 255}
	houndColor   = color.RGBA{40, 40, 40, 255}
	houndRim     = color.RGBA{200, 200, 200, 255}
)

// Game is the ebiten front end. It owns click selection only; every move
// goes through the controller and the board is redrawn from the state it
// returns.
type Game struct {
	app       *factory.App
	ctx       context.Context
	dimension int

	state    *model.GameState
	selected *model.Position
	message  string
}

// NewGame starts a standard game of the given dimension
func NewGame(app *factory.App, dimension int) (*Game, error) {
	g := &Game{app: app, ctx: context.Background(), dimension: dimension}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) restart() error {
	state, err := g.app.GameController.NewGame(g.dimension)
	if err != nil {
		return err
	}
	g.state = state
	g.selected = nil
	g.message = "New game"
	return nil
}

func (g *Game) cellSize() int {
	return boardPixels / g.state.Dimension
}

// Update handles input
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.selected = nil
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := g.restart(); err != nil {
			g.message = err.Error()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.playBot()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.load()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if pos, ok := g.squareAt(x, y); ok {
			g.click(pos)
		}
	}
	return nil
}

func (g *Game) squareAt(x, y int) (model.Position, bool) {
	y -= headerHeight
	if x < 0 || y < 0 {
		return model.Position{}, false
	}
	size := g.cellSize()
	pos := model.Position{Row: y / size, Col: x / size}
	return pos, pos.InBounds(g.state.Dimension)
}

// click selects an origin on the first click and tries the move on the second
func (g *Game) click(pos model.Position) {
	if g.state.IsOver() {
		g.message = "Game over, press R to play again"
		return
	}

	if g.selected == nil || g.state.PieceAt(pos) == g.state.Turn {
		if g.state.PieceAt(pos) != g.state.Turn {
			g.message = fmt.Sprintf("Select a %s", g.state.Turn)
			return
		}
		if g.selected != nil && *g.selected == pos {
			g.selected = nil
			return
		}
		g.selected = &pos
		return
	}

	move := model.Move{From: *g.selected, To: pos}
	g.selected = nil

	next, result, err := g.app.GameController.ApplyMove(g.state, move)
	if err != nil {
		g.message = err.Error()
		return
	}
	g.state = next
	g.message = fmt.Sprintf("%s moved %s", result.Piece, result.Move)
}

func (g *Game) playBot() {
	next, result, err := g.app.BotService.PlayTurn(g.ctx, g.state)
	if err != nil {
		g.message = err.Error()
		return
	}
	g.state = next
	g.selected = nil
	g.message = fmt.Sprintf("%s moved %s", result.Piece, result.Move)
}

func (g *Game) save() {
	if _, err := g.app.GameController.Save(g.ctx, saveSlot, g.state); err != nil {
		g.message = err.Error()
		return
	}
	g.message = "Saved to slot " + saveSlot
}

func (g *Game) load() {
	state, err := g.app.GameController.Load(g.ctx, saveSlot)
	if err != nil {
		g.message = err.Error()
		return
	}
	g.state = state
	g.selected = nil
	g.message = "Loaded slot " + saveSlot
}

// Draw renders the status line, the board and the key help
func (g *Game) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, statusText(g.state), 10, 10)
	ebitenutil.DebugPrintAt(screen, g.message, 10, 30)

	targets := make(map[model.Position]bool)
	if g.selected != nil {
		for _, m := range rules.LegalMoves(g.state, g.state.Turn) {
			if m.From == *g.selected {
				targets[m.To] = true
			}
		}
	}

	size := g.cellSize()
	for row := 0; row < g.state.Dimension; row++ {
		for col := 0; col < g.state.Dimension; col++ {
			pos := model.Position{Row: row, Col: col}
			x := float64(col * size)
			y := float64(headerHeight + row*size)

			fill := lightSquare
			switch {
			case g.selected != nil && *g.selected == pos:
				fill = selectedTint
			case targets[pos]:
				fill = targetTint
			case pos.IsDark():
				fill = darkSquare
			}
			ebitenutil.DrawRect(screen, x, y, float64(size), float64(size), fill)

			inset := float64(size) / 5
			piece := float64(size) - 2*inset
			switch g.state.PieceAt(pos) {
			case model.Fox:
				ebitenutil.DrawRect(screen, x+inset, y+inset, piece, piece, foxColor)
			case model.Hound:
				ebitenutil.DrawRect(screen, x+inset-1, y+inset-1, piece+2, piece+2, houndRim)
				ebitenutil.DrawRect(screen, x+inset, y+inset, piece, piece, houndColor)
			}
		}
	}

	ebitenutil.DebugPrintAt(screen, "Click piece then square | A: AI move | R: Restart | S: Save | L: Load | ESC: Clear",
		10, headerHeight+boardPixels+12)
}

func statusText(state *model.GameState) string {
	switch state.Status() {
	case model.StatusFoxWon:
		return "The Fox wins!"
	case model.StatusHoundWon:
		return "The Hounds win!"
	}
	if state.Turn == model.Hound {
		return "Hounds to move"
	}
	return "Fox to move"
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(zerolog.InfoLevel).With().Timestamp().Logger()

	// Optional board dimension argument
	dimension := model.DefaultDimension
	if len(os.Args) > 1 {
		d, err := strconv.Atoi(os.Args[1])
		if err != nil {
			logger.Fatal().Err(err).Str("arg", os.Args[1]).Msg("invalid dimension")
		}
		dimension = d
	}

	saveDir := filepath.Join(".foxhound", "saves")
	if home, err := os.UserHomeDir(); err == nil {
		saveDir = filepath.Join(home, saveDir)
	}

	app, err := factory.New(factory.Config{
		Logger:      &logger,
		StorageType: factory.StorageTypeFile,
		SaveDir:     saveDir,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create app")
	}
	defer app.Close()

	game, err := NewGame(app, dimension)
	if err != nil {
		logger.Fatal().Err(err).Int("dimension", dimension).Msg("failed to start game")
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Fox and Hounds")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error().Err(err).Msg("game loop failed")
		app.Close()
		os.Exit(1)
	}
}
