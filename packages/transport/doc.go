// Package transport defines the injected HTTP transport contract and its
// two implementations: Client, which wraps the standard library's http
// package with configurable timeouts, redirects and rate limiting, and
// Fake, the debug substitute that records calls without touching the
// network.
package transport
