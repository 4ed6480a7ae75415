package storage

import (
	"context"

	"github.com/mcoot/foxhound-go/internal/model"
)

// Storage defines the interface for save slot persistence.
//
// Backends persist the codec text of the state, never a structured form, and
// decode it on read so a corrupt slot surfaces as a *model.LoadError.
type Storage interface {
	// SaveGame creates or replaces the slot save.Name
	SaveGame(ctx context.Context, save *model.SavedGame) error
	// GetGame returns model.ErrSaveNotFound for unknown slots
	GetGame(ctx context.Context, name string) (*model.SavedGame, error)
	// DeleteGame returns model.ErrSaveNotFound for unknown slots
	DeleteGame(ctx context.Context, name string) error
	// ListGames returns every slot sorted by name
	ListGames(ctx context.Context) ([]*model.SavedGame, error)
}
