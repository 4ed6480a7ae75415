package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/storage/storagetest"
)

type StorageSuite struct {
	storagetest.Suite
	path   string
	sqlite *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "data", "foxhound.db")

	store, err := New(s.path)
	s.Require().NoError(err)
	s.sqlite = store
	s.Storage = store
	s.Ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.sqlite != nil {
		_ = s.sqlite.Close()
	}
}

func (s *StorageSuite) TestStoresCodecText() {
	s.Require().NoError(s.sqlite.SaveGame(s.Ctx, s.Fixture("slot-1")))

	var state string
	err := s.sqlite.db.QueryRow(`SELECT state FROM saves WHERE name = ?`, "slot-1").Scan(&state)
	s.Require().NoError(err)
	s.Equal("8 H B1 C2 F1 H1 E5", state)
}

func (s *StorageSuite) TestReopenKeepsSaves() {
	s.Require().NoError(s.sqlite.SaveGame(s.Ctx, s.Fixture("slot-1")))
	s.Require().NoError(s.sqlite.Close())

	store, err := New(s.path)
	s.Require().NoError(err)
	s.sqlite = store

	save, err := store.GetGame(s.Ctx, "slot-1")
	s.Require().NoError(err)
	s.Equal(model.Hound, save.State.Turn)
}

func (s *StorageSuite) TestCorruptRowIsLoadError() {
	_, err := s.sqlite.db.Exec(`INSERT INTO saves (name, state, saved_at) VALUES ('broken', '8 Q B1 D1 F1 H1 E8', '2024-03-09T14:30:00Z')`)
	s.Require().NoError(err)

	_, err = s.sqlite.GetGame(s.Ctx, "broken")
	s.ErrorIs(err, model.ErrBadTurn)
}
