// Package cmd implements the waypost CLI commands using Cobra.
//
// Available commands:
//   - call: Issue an ad-hoc request built from positional URL segments
//   - route: Call a named route with parameter substitution
//   - generate: Print the URL a route would resolve to
//   - routes: List configured routes, optionally watching for changes
//   - history: Show recently dispatched requests
//   - init: Create a new waypost project with starter files
//   - version: Show waypost version information
//
// The CLI supports flags for request data, headers, parameters, repeat
// counts, and a debug mode that routes requests to a fake transport.
package cmd
