package config

// DefaultAllowedRequestTypes returns the closed verb set requests are
// validated against when no allow-list is configured.
func DefaultAllowedRequestTypes() []string {
	return []string{"get", "post", "put", "patch", "head", "delete"}
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		BaseURL:             "",
		AllowedRequestTypes: nil, // falls back to DefaultAllowedRequestTypes
		Debug:               boolPtr(false),
		TrailingSlash:       boolPtr(false),
		Timeout:             30000, // 30 seconds
		Headers:             nil,
		RoutesFile:          "",
		HistoryDB:           "",
		RateLimit:           0,
		Verbose:             boolPtr(false),
	}
}
