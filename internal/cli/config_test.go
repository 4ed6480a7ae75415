package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/foxhound-go/internal/factory"
	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/services/bot"
	"github.com/mcoot/foxhound-go/internal/testutil"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) SetupTest() {
	for _, key := range []string{
		"FOXHOUND_STORAGE", "FOXHOUND_SAVE_DIR", "FOXHOUND_SQLITE_PATH", "FOXHOUND_REDIS_URL",
		"FOXHOUND_STRATEGY", "FOXHOUND_DEPTH", "FOXHOUND_SEED", "FOXHOUND_LOG_LEVEL", "FOXHOUND_FANCY",
	} {
		s.T().Setenv(key, "")
	}
}

func (s *ConfigSuite) TestDefaults() {
	cfg := DefaultConfig()

	s.Equal(factory.StorageTypeFile, cfg.StorageType)
	s.Equal(model.DefaultBotStrategy, cfg.Strategy)
	s.Equal(bot.DefaultDepth, cfg.Depth)
	s.Equal("text", cfg.Output)
	s.Equal("info", cfg.LogLevel)
	s.False(cfg.HasSeed)
	s.False(cfg.Fancy)
	s.Equal("saves", filepath.Base(cfg.SaveDir))
}

func (s *ConfigSuite) TestEnvironmentOverrides() {
	s.T().Setenv("FOXHOUND_STORAGE", "sqlite")
	s.T().Setenv("FOXHOUND_SQLITE_PATH", "/tmp/fh.db")
	s.T().Setenv("FOXHOUND_STRATEGY", "minimax")
	s.T().Setenv("FOXHOUND_DEPTH", "6")
	s.T().Setenv("FOXHOUND_SEED", "42")
	s.T().Setenv("FOXHOUND_FANCY", "true")

	cfg := DefaultConfig()

	s.Equal(factory.StorageTypeSQLite, cfg.StorageType)
	s.Equal("/tmp/fh.db", cfg.SQLitePath)
	s.Equal("minimax", cfg.Strategy)
	s.Equal(6, cfg.Depth)
	s.True(cfg.HasSeed)
	s.Equal(uint64(42), cfg.Seed)
	s.True(cfg.Fancy)
}

func (s *ConfigSuite) TestBadNumbersFallBack() {
	s.T().Setenv("FOXHOUND_DEPTH", "deep")
	s.T().Setenv("FOXHOUND_SEED", "-1")

	cfg := DefaultConfig()

	s.Equal(bot.DefaultDepth, cfg.Depth)
	s.False(cfg.HasSeed)
}

func (s *ConfigSuite) TestFactoryConfig() {
	logger := testutil.NopLogger()
	cfg := &Config{
		StorageType: factory.StorageTypeRedis,
		RedisURL:    "redis://cache:6379/2",
		Strategy:    "random",
		Depth:       3,
		Seed:        9,
		HasSeed:     true,
	}

	fc := cfg.FactoryConfig(&logger)

	s.Require().NotNil(fc.RedisConfig)
	s.Equal("redis://cache:6379/2", fc.RedisConfig.URL)
	s.Require().NotNil(fc.Seed)
	s.Equal(uint64(9), *fc.Seed)
	s.Equal("random", fc.Strategy)
	s.Equal(3, fc.Depth)

	cfg.StorageType = factory.StorageTypeMemory
	cfg.HasSeed = false
	fc = cfg.FactoryConfig(&logger)
	s.Nil(fc.RedisConfig)
	s.Nil(fc.Seed)
}

func (s *ConfigSuite) TestLoadDotEnv() {
	dir := s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, ".env"), []byte("FOXHOUND_STRATEGY=random\nFOXHOUND_SAVE_DIR=/from/dotenv\n"), 0o644))
	s.T().Chdir(dir)

	// Already set in the environment, so .env must not replace it
	s.T().Setenv("FOXHOUND_STRATEGY", "minimax")
	// Unset, so .env fills it in; Setenv restores the old value afterwards
	s.T().Setenv("FOXHOUND_SAVE_DIR", "")
	s.Require().NoError(os.Unsetenv("FOXHOUND_SAVE_DIR"))

	s.Require().NoError(LoadDotEnv())

	cfg := DefaultConfig()
	s.Equal("minimax", cfg.Strategy)
	s.Equal("/from/dotenv", cfg.SaveDir)
}

func (s *ConfigSuite) TestLoadDotEnvWithoutFile() {
	s.T().Chdir(s.T().TempDir())
	s.NoError(LoadDotEnv())
}
