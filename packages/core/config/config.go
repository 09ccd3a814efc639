package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/waypost-dev/waypost/packages/routes"
)

// Config represents the waypost configuration
type Config struct {
	BaseURL             string                       `json:"baseURL,omitempty"`
	AllowedRequestTypes []string                     `json:"allowedRequestTypes,omitempty"` // lowercase verb names
	Debug               *bool                        `json:"debug,omitempty"`
	TrailingSlash       *bool                        `json:"trailingSlash,omitempty"`
	Timeout             int                          `json:"timeout,omitempty"` // milliseconds
	Headers             map[string]string            `json:"headers,omitempty"` // Default headers for all requests
	Routes              map[string]routes.Definition `json:"routes,omitempty"`  // Inline custom routes
	RoutesFile          string                       `json:"routesFile,omitempty"`
	HistoryDB           string                       `json:"historyDB,omitempty"` // SQLite path for the request log
	RateLimit           float64                      `json:"rateLimit,omitempty"` // requests per second, 0 = unlimited
	Verbose             *bool                        `json:"verbose,omitempty"`
}

// boolPtr returns a pointer to a bool value
func boolPtr(b bool) *bool {
	return &b
}

// BoolPtr is exported version of boolPtr for external use
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetDebug returns the debug setting, defaulting to false
func (c *Config) GetDebug() bool {
	return getBool(c.Debug, false)
}

// GetTrailingSlash returns the trailing slash setting, defaulting to false
func (c *Config) GetTrailingSlash() bool {
	return getBool(c.TrailingSlash, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetAllowedRequestTypes returns the configured verb allow-list, or the
// default closed set when none is configured.
func (c *Config) GetAllowedRequestTypes() []string {
	if len(c.AllowedRequestTypes) > 0 {
		return c.AllowedRequestTypes
	}
	return DefaultAllowedRequestTypes()
}

// IsAllowedRequestType reports whether a verb name is in the allow-list.
// The comparison is case-insensitive; the list is conventionally lowercase.
func (c *Config) IsAllowedRequestType(requestType string) bool {
	requestType = strings.ToLower(requestType)
	for _, allowed := range c.GetAllowedRequestTypes() {
		if strings.ToLower(allowed) == requestType {
			return true
		}
	}
	return false
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".waypost.config.json",
	"waypost.config.json",
	".waypostrc",
	".waypostrc.json",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search for config file in current directory
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.BaseURL != "" {
		result.BaseURL = other.BaseURL
	}
	if len(other.AllowedRequestTypes) > 0 {
		result.AllowedRequestTypes = other.AllowedRequestTypes
	}
	if other.Timeout > 0 {
		result.Timeout = other.Timeout
	}
	if other.RoutesFile != "" {
		result.RoutesFile = other.RoutesFile
	}
	if other.HistoryDB != "" {
		result.HistoryDB = other.HistoryDB
	}
	if other.RateLimit > 0 {
		result.RateLimit = other.RateLimit
	}

	// Boolean flags - only override if explicitly set in other config
	if other.Debug != nil {
		result.Debug = other.Debug
	}
	if other.TrailingSlash != nil {
		result.TrailingSlash = other.TrailingSlash
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}

	// Merge headers
	if len(other.Headers) > 0 {
		if result.Headers == nil {
			result.Headers = make(map[string]string)
		}
		for k, v := range other.Headers {
			result.Headers[k] = v
		}
	}

	// Merge inline routes
	if len(other.Routes) > 0 {
		if result.Routes == nil {
			result.Routes = make(map[string]routes.Definition)
		}
		for name, def := range other.Routes {
			result.Routes[name] = def
		}
	}

	return &result
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
