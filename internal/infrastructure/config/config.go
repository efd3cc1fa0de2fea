package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/GriffinCanCode/fileshell/internal/codec"
	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/shared/utils"
	"github.com/GriffinCanCode/fileshell/internal/stream"
)

// Config holds all application configuration.
type Config struct {
	Logging LogConfig
	Shell   ShellConfig
	Metrics MetricsConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// ShellConfig holds session and stream configuration.
type ShellConfig struct {
	Username      string `envconfig:"FM_USERNAME" default:"User"`
	StartDir      string `envconfig:"FM_START_DIR"`
	Codec         string `envconfig:"FM_CODEC" default:"brotli"`
	ChunkSize     int    `envconfig:"FM_CHUNK_SIZE" default:"65536"`
	HashAlgorithm string `envconfig:"FM_HASH" default:"sha256"`
}

// MetricsConfig holds command metrics configuration.
type MetricsConfig struct {
	Enabled bool `envconfig:"FM_METRICS" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
		Shell: ShellConfig{
			Username:      session.DefaultUsername,
			Codec:         codec.DefaultName,
			ChunkSize:     stream.DefaultChunkSize,
			HashAlgorithm: string(utils.SHA256),
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate rejects values the shell cannot start with.
func (c *Config) Validate() error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}
	if _, err := codec.Lookup(c.Shell.Codec); err != nil {
		return fmt.Errorf("invalid codec: %w", err)
	}
	if _, err := utils.NewHasher(utils.HashAlgorithm(c.Shell.HashAlgorithm)); err != nil {
		return fmt.Errorf("invalid hash algorithm: %w", err)
	}
	if c.Shell.ChunkSize < stream.MinChunkSize || c.Shell.ChunkSize > stream.MaxChunkSize {
		return fmt.Errorf("chunk size %d out of range [%d, %d]",
			c.Shell.ChunkSize, stream.MinChunkSize, stream.MaxChunkSize)
	}
	return nil
}
