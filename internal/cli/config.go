package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/mcoot/foxhound-go/internal/factory"
	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/services/bot"
	redisstorage "github.com/mcoot/foxhound-go/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	StorageType string
	SaveDir     string
	SQLitePath  string
	RedisURL    string
	Strategy    string
	Depth       int
	Seed        uint64
	HasSeed     bool
	Output      string
	Fancy       bool
	Verbose     bool
	LogLevel    string
}

// LoadDotEnv loads variables from a .env file in the working directory, if
// there is one. Variables already set in the environment win.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	cfg := &Config{
		StorageType: getEnvOrDefault("FOXHOUND_STORAGE", factory.StorageTypeFile),
		SaveDir:     getEnvOrDefault("FOXHOUND_SAVE_DIR", defaultDataPath("saves")),
		SQLitePath:  getEnvOrDefault("FOXHOUND_SQLITE_PATH", defaultDataPath("foxhound.db")),
		RedisURL:    getEnvOrDefault("FOXHOUND_REDIS_URL", redisstorage.DefaultConfig().URL),
		Strategy:    getEnvOrDefault("FOXHOUND_STRATEGY", model.DefaultBotStrategy),
		Depth:       bot.DefaultDepth,
		Output:      "text",
		Verbose:     false,
		LogLevel:    getEnvOrDefault("FOXHOUND_LOG_LEVEL", zerolog.LevelInfoValue),
	}

	if depth, err := strconv.Atoi(os.Getenv("FOXHOUND_DEPTH")); err == nil {
		cfg.Depth = depth
	}
	if seed, err := strconv.ParseUint(os.Getenv("FOXHOUND_SEED"), 10, 64); err == nil {
		cfg.Seed = seed
		cfg.HasSeed = true
	}
	if fancy, err := strconv.ParseBool(os.Getenv("FOXHOUND_FANCY")); err == nil {
		cfg.Fancy = fancy
	}
	return cfg
}

// FactoryConfig converts the CLI settings into application wiring options
func (c *Config) FactoryConfig(logger *zerolog.Logger) factory.Config {
	fc := factory.Config{
		Logger:      logger,
		StorageType: c.StorageType,
		SaveDir:     c.SaveDir,
		SQLitePath:  c.SQLitePath,
		Strategy:    c.Strategy,
		Depth:       c.Depth,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	if c.HasSeed {
		seed := c.Seed
		fc.Seed = &seed
	}
	return fc
}

func defaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".foxhound", name)
	}
	return filepath.Join(home, ".foxhound", name)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
