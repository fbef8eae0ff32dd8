// Package logging provides structured logging using uber/zap.
//
// Two modes are offered:
//   - Production: JSON output for machine parsing
//   - Development: colored console output for human readability
//
// Logs go to stderr so they never interleave with shell output on
// stdout.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("vfs loaded", zap.String("path", path))
package logging
