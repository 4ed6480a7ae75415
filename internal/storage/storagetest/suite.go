// Package storagetest holds the behaviour every storage backend must share.
// Backend test suites embed Suite and set NewStorage in SetupTest.
package storagetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/storage"
)

// SavedAt is the timestamp used for fixtures; whole seconds so every backend
// can store it exactly
var SavedAt = time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

// Suite runs the common storage contract against Storage
type Suite struct {
	suite.Suite
	Storage storage.Storage
	Ctx     context.Context
}

// Fixture returns a save slot holding a mid-game position
func (s *Suite) Fixture(name string) *model.SavedGame {
	state, err := model.NewGameState(8)
	s.Require().NoError(err)
	state.Fox = model.Position{Row: 4, Col: 4}
	state.Hounds[1] = model.Position{Row: 1, Col: 2}
	state.Turn = model.Hound

	return &model.SavedGame{Name: name, State: state, SavedAt: SavedAt}
}

func (s *Suite) TestSaveAndGetGame() {
	save := s.Fixture("slot-1")
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, save))

	got, err := s.Storage.GetGame(s.Ctx, "slot-1")
	s.Require().NoError(err)
	s.Equal("slot-1", got.Name)
	s.Equal(save.State.Dimension, got.State.Dimension)
	s.Equal(save.State.Hounds, got.State.Hounds)
	s.Equal(save.State.Fox, got.State.Fox)
	s.Equal(model.Hound, got.State.Turn)
	s.Equal(model.StatusContinue, got.State.Status())
	s.True(SavedAt.Equal(got.SavedAt), "saved at %v", got.SavedAt)
}

func (s *Suite) TestSaveOverwrites() {
	save := s.Fixture("slot-1")
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, save))

	fresh, err := model.NewGameState(6)
	s.Require().NoError(err)
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, &model.SavedGame{Name: "slot-1", State: fresh, SavedAt: SavedAt}))

	got, err := s.Storage.GetGame(s.Ctx, "slot-1")
	s.Require().NoError(err)
	s.Equal(6, got.State.Dimension)
}

func (s *Suite) TestGetGameNotFound() {
	_, err := s.Storage.GetGame(s.Ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSaveNotFound)
}

func (s *Suite) TestDeleteGame() {
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, s.Fixture("slot-1")))

	err := s.Storage.DeleteGame(s.Ctx, "slot-1")
	s.Require().NoError(err)

	_, err = s.Storage.GetGame(s.Ctx, "slot-1")
	s.ErrorIs(err, model.ErrSaveNotFound)
}

func (s *Suite) TestDeleteGameNotFound() {
	err := s.Storage.DeleteGame(s.Ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSaveNotFound)
}

func (s *Suite) TestListGamesSortedByName() {
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		s.Require().NoError(s.Storage.SaveGame(s.Ctx, s.Fixture(name)))
	}

	saves, err := s.Storage.ListGames(s.Ctx)
	s.Require().NoError(err)
	s.Require().Len(saves, 3)
	s.Equal("alpha", saves[0].Name)
	s.Equal("bravo", saves[1].Name)
	s.Equal("charlie", saves[2].Name)
}

func (s *Suite) TestListGamesEmpty() {
	saves, err := s.Storage.ListGames(s.Ctx)
	s.Require().NoError(err)
	s.Empty(saves)
}

func (s *Suite) TestSaveRejectsBadName() {
	for _, name := range []string{"", "../escape", "has space", "dot.txt"} {
		err := s.Storage.SaveGame(s.Ctx, &model.SavedGame{Name: name, State: s.Fixture("x").State})
		s.ErrorIs(err, model.ErrInvalidSaveName, "name %q", name)
	}
}
