package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/mcoot/foxhound-go/internal/codec"
	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	saves map[string]record
}

type record struct {
	state   string
	savedAt time.Time
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		saves: make(map[string]record),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, save *model.SavedGame) error {
	if err := model.ValidateSaveName(save.Name); err != nil {
		return err
	}
	text := codec.Encode(save.State)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves[save.Name] = record{state: text, savedAt: save.SavedAt}
	return nil
}

func (s *Storage) GetGame(ctx context.Context, name string) (*model.SavedGame, error) {
	s.mu.RLock()
	rec, ok := s.saves[name]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrSaveNotFound
	}
	return rec.decode(name)
}

func (s *Storage) DeleteGame(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.saves[name]; !ok {
		return model.ErrSaveNotFound
	}
	delete(s.saves, name)
	return nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.SavedGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	saves := make([]*model.SavedGame, 0, len(s.saves))
	for name, rec := range s.saves {
		save, err := rec.decode(name)
		if err != nil {
			return nil, err
		}
		saves = append(saves, save)
	}
	slices.SortFunc(saves, func(a, b *model.SavedGame) int {
		return strings.Compare(a.Name, b.Name)
	})
	return saves, nil
}

func (r record) decode(name string) (*model.SavedGame, error) {
	state, err := codec.Decode(r.state)
	if err != nil {
		return nil, err
	}
	return &model.SavedGame{Name: name, State: state, SavedAt: r.savedAt}, nil
}
