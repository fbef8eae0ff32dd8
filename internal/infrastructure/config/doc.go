// Package config provides 12-factor configuration for the emulator.
//
// Configuration is resolved in three layers, later layers winning:
//  1. Environment variables with defaults (envconfig)
//  2. An optional TOML configuration file (--config)
//  3. CLI flags, applied by cmd/vfsemu
//
// Environment Variables:
//   - VFS_PATH, VFS_SCRIPT, VFS_STRICT
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
package config
