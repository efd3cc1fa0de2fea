// Package config provides 12-factor configuration management for the file shell.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags override environment variables; nothing is ever read from or
// written to a configuration file.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Shell: Username, start directory, codec, chunk size, digest algorithm
//   - Metrics: Per-command counters
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - FM_USERNAME, FM_START_DIR, FM_CODEC, FM_CHUNK_SIZE, FM_HASH
//   - FM_METRICS
package config
