package factory

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/mcoot/foxhound-go/internal/dependencies/clock"
	"github.com/mcoot/foxhound-go/internal/dependencies/random"
	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/services/bot"
	"github.com/mcoot/foxhound-go/internal/services/game"
	"github.com/mcoot/foxhound-go/internal/storage"
	filestorage "github.com/mcoot/foxhound-go/internal/storage/file"
	"github.com/mcoot/foxhound-go/internal/storage/memory"
	redisstorage "github.com/mcoot/foxhound-go/internal/storage/redis"
	sqlitestorage "github.com/mcoot/foxhound-go/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// ValidStorageTypes returns every supported storage backend name
func ValidStorageTypes() []string {
	return []string{StorageTypeMemory, StorageTypeFile, StorageTypeRedis, StorageTypeSQLite}
}

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	GameController *game.Controller
	BotService     *bot.Service

	closer io.Closer
}

// Close releases the storage connection, if the backend holds one
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *zerolog.Logger
	// StorageType selects the storage backend (see ValidStorageTypes)
	// If empty, defaults to "memory"
	StorageType string
	// SaveDir is the directory for the file backend (required if StorageType is "file")
	SaveDir string
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Strategy is the default bot strategy; empty means model.DefaultBotStrategy
	Strategy string
	// Depth is the minimax search depth; zero means bot.DefaultDepth
	Depth int
	// Seed makes the random bot reproducible when set
	Seed *uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	strategy := cfg.Strategy
	if strategy == "" {
		strategy = model.DefaultBotStrategy
	}
	depth := cfg.Depth
	if depth == 0 {
		depth = bot.DefaultDepth
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	// Create storage based on type
	store, closer, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	app, err := newWithDependencies(store, clk, rnd, strategy, depth, logger)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}
	app.closer = closer

	logger.Debug().
		Str("storage", storageTypeOrDefault(cfg.StorageType)).
		Str("strategy", strategy).
		Int("depth", bot.ClampDepth(depth)).
		Bool("seeded", cfg.Seed != nil).
		Msg("application wired")

	return app, nil
}

func storageTypeOrDefault(storageType string) string {
	if storageType == "" {
		return StorageTypeMemory
	}
	return storageType
}

func newStorage(cfg Config) (storage.Storage, io.Closer, error) {
	switch storageTypeOrDefault(cfg.StorageType) {
	case StorageTypeMemory:
		return memory.New(), nil, nil
	case StorageTypeFile:
		if cfg.SaveDir == "" {
			return nil, nil, errors.New("SaveDir required when StorageType is file")
		}
		fileStore, err := filestorage.New(cfg.SaveDir)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Logger != nil {
			fileStore.WithLogger(*cfg.Logger)
		}
		return fileStore, nil, nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return redisStore, redisStore, nil
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.New(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqliteStore, sqliteStore, nil
	default:
		return nil, nil, fmt.Errorf("invalid StorageType %q: must be one of %v", cfg.StorageType, ValidStorageTypes())
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, strategy string, depth int, logger zerolog.Logger) (*App, error) {
	strategies := bot.DefaultStrategies(rnd, depth)
	if _, ok := strategies[strategy]; !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownStrategy, strategy)
	}

	// Create services
	gameController := game.NewController(store, clk, rnd, logger)
	botService := bot.NewService(gameController, strategies, strategy, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		GameController: gameController,
		BotService:     botService,
	}, nil
}
