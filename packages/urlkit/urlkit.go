// Package urlkit provides the URL sanitation helpers the builder
// delegates to: base/segment joining, duplicate-slash collapsing and
// trailing-slash policy.
package urlkit

import "strings"

// Join joins a base URL with path segments using single slashes.
// Empty segments are dropped; an empty base yields a relative path.
func Join(base string, segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	if base != "" {
		parts = append(parts, strings.TrimSuffix(base, "/"))
	}
	for _, seg := range segments {
		seg = strings.Trim(seg, "/")
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, "/")
}

// Sanitize collapses duplicate slashes outside the scheme and applies
// the trailing-slash policy. The query string, if any, is left intact.
func Sanitize(rawURL string, trailingSlash bool) string {
	if rawURL == "" {
		return ""
	}

	scheme := ""
	rest := rawURL
	if i := strings.Index(rawURL, "://"); i >= 0 {
		scheme = rawURL[:i+3]
		rest = rawURL[i+3:]
	}

	query := ""
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		query = rest[i:]
		rest = rest[:i]
	}

	for strings.Contains(rest, "//") {
		rest = strings.ReplaceAll(rest, "//", "/")
	}

	if trailingSlash {
		if !strings.HasSuffix(rest, "/") {
			rest += "/"
		}
	} else {
		rest = strings.TrimSuffix(rest, "/")
	}

	return scheme + rest + query
}
