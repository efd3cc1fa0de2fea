// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// All diagnostics go to stderr. Stdout belongs to the shell's user-visible
// output and must stay free of log lines so scripted sessions can be
// compared byte for byte.
//
// Example Usage:
//
//	logger, err := logging.New(logging.DefaultConfig())
//	logger.Debug("dispatch", zap.String("verb", "cp"))
//	logger.Warn("partial move", zap.Error(err))
package logging
