package redis

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/foxhound-go/internal/codec"
	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, save *model.SavedGame) error {
	if err := model.ValidateSaveName(save.Name); err != nil {
		return err
	}
	key := saveKey(save.Name)

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key,
		fieldState, codec.Encode(save.State),
		fieldSavedAt, save.SavedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.SAdd(ctx, savesIndexKey(), save.Name)
	if s.cfg.SaveTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.SaveTTL)
	} else {
		pipe.Persist(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("saving %q: %w", save.Name, err)
	}
	return nil
}

func (s *Storage) GetGame(ctx context.Context, name string) (*model.SavedGame, error) {
	fields, err := s.client.HGetAll(ctx, saveKey(name)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, model.ErrSaveNotFound
	}
	return decodeSave(name, fields)
}

func (s *Storage) DeleteGame(ctx context.Context, name string) error {
	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, saveKey(name))
	pipe.SRem(ctx, savesIndexKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	if del.Val() == 0 {
		return model.ErrSaveNotFound
	}
	return nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.SavedGame, error) {
	names, err := s.client.SMembers(ctx, savesIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return []*model.SavedGame{}, nil
	}
	slices.Sort(names)

	// Fetch all slots in one round trip
	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(names))
	for i, name := range names {
		cmds[i] = pipe.HGetAll(ctx, saveKey(name))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	saves := make([]*model.SavedGame, 0, len(names))
	var expired []any
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			expired = append(expired, names[i]) // Slot TTL ran out
			continue
		}
		save, err := decodeSave(names[i], fields)
		if err != nil {
			return nil, err
		}
		saves = append(saves, save)
	}

	if len(expired) > 0 {
		if err := s.client.SRem(ctx, savesIndexKey(), expired...).Err(); err != nil {
			return nil, err
		}
	}
	return saves, nil
}

func decodeSave(name string, fields map[string]string) (*model.SavedGame, error) {
	state, err := codec.Decode(fields[fieldState])
	if err != nil {
		return nil, fmt.Errorf("slot %q: %w", name, err)
	}

	var savedAt time.Time
	if raw := fields[fieldSavedAt]; raw != "" {
		savedAt, err = time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("slot %q: bad saved_at: %w", name, err)
		}
	}
	return &model.SavedGame{Name: name, State: state, SavedAt: savedAt}, nil
}
