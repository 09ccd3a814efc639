package cmd

// Exit codes for the waypost CLI
const (
	// ExitSuccess indicates the request completed with a 2xx status
	ExitSuccess = 0

	// ExitError indicates a generic failure
	ExitError = 1

	// ExitHTTPError indicates the request completed with a 4xx/5xx status
	ExitHTTPError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
