// Package file stores save slots as one text file per slot, each holding the
// codec line of the game. The file's modification time is the save time.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mcoot/foxhound-go/internal/codec"
	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/storage"
)

// Extension is the only file extension save files may use
const Extension = ".txt"

// Storage is a directory-backed implementation of the storage interface
type Storage struct {
	dir    string
	logger zerolog.Logger
}

// New creates the save directory if needed
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &Storage{dir: dir, logger: zerolog.Nop()}, nil
}

// WithLogger sets the logger used to report unreadable save files
func (s *Storage) WithLogger(logger zerolog.Logger) *Storage {
	s.logger = logger.With().Str("component", "file-storage").Logger()
	return s
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dir returns the save directory
func (s *Storage) Dir() string {
	return s.dir
}

func (s *Storage) pathFor(name string) string {
	return filepath.Join(s.dir, name+Extension)
}

func (s *Storage) SaveGame(ctx context.Context, save *model.SavedGame) error {
	if err := model.ValidateSaveName(save.Name); err != nil {
		return err
	}

	path := s.pathFor(save.Name)
	if err := WriteState(path, save.State); err != nil {
		return err
	}
	if !save.SavedAt.IsZero() {
		if err := os.Chtimes(path, save.SavedAt, save.SavedAt); err != nil {
			return fmt.Errorf("failed to stamp save file: %w", err)
		}
	}
	return nil
}

func (s *Storage) GetGame(ctx context.Context, name string) (*model.SavedGame, error) {
	if err := model.ValidateSaveName(name); err != nil {
		return nil, model.ErrSaveNotFound
	}
	return s.read(name)
}

func (s *Storage) DeleteGame(ctx context.Context, name string) error {
	if err := model.ValidateSaveName(name); err != nil {
		return model.ErrSaveNotFound
	}
	err := os.Remove(s.pathFor(name))
	if errors.Is(err, fs.ErrNotExist) {
		return model.ErrSaveNotFound
	}
	return err
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.SavedGame, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read save directory: %w", err)
	}

	saves := []*model.SavedGame{}
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), Extension)
		if !ok || entry.IsDir() || model.ValidateSaveName(name) != nil {
			continue // Not one of ours
		}
		save, err := s.read(name)
		if errors.Is(err, model.ErrSaveNotFound) {
			continue // Removed since ReadDir
		}
		var le *model.LoadError
		if errors.As(err, &le) {
			// A bad file hides only its own slot
			s.logger.Warn().Err(err).Str("save", name).Msg("skipping unreadable save file")
			continue
		}
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

func (s *Storage) read(name string) (*model.SavedGame, error) {
	path := s.pathFor(name)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, model.ErrSaveNotFound
	}
	if err != nil {
		return nil, err
	}

	state, err := ReadState(path)
	if err != nil {
		return nil, err
	}
	return &model.SavedGame{Name: name, State: state, SavedAt: info.ModTime()}, nil
}

// WriteState writes the codec line of state to a .txt path. The file is
// written beside its target and renamed into place so a crash never leaves a
// half-written save.
func WriteState(path string, state *model.GameState) error {
	if err := CheckPath(path); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".save-*")
	if err != nil {
		return fmt.Errorf("failed to create save file: %w", err)
	}
	defer os.Remove(tmp.Name()) // No-op once renamed

	if _, err := tmp.WriteString(codec.Encode(state) + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	return nil
}

// ReadState decodes the game stored in a .txt path
func ReadState(path string) (*model.GameState, error) {
	if err := CheckPath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	return codec.Decode(string(data))
}

// CheckPath rejects paths without the .txt extension
func CheckPath(path string) error {
	if !strings.EqualFold(filepath.Ext(path), Extension) {
		return fmt.Errorf("%q: %w", path, model.ErrInvalidSavePath)
	}
	return nil
}
