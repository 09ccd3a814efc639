// Package config handles configuration loading and management for waypost.
//
// It provides functionality for:
//   - Loading configuration from .waypost.config.json files
//   - Default configuration values
//   - Merging file config with programmatic overrides
package config
