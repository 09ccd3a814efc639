package transport

import (
	"context"
	"time"
)

// RequestOptions carries per-request transport options. All fields are
// optional; a nil RequestOptions is valid.
type RequestOptions struct {
	// Headers are merged over the transport's default headers.
	Headers map[string]string
	// Params are encoded into the URL query string.
	Params map[string]string
	// Timeout bounds this single request. Zero means the transport default.
	Timeout time.Duration
	// Extra holds options opaque to the transport contract. Implementations
	// may recognize some keys and must ignore the rest.
	Extra map[string]any
}

// Transport is the injected HTTP executor: one method per allowed verb.
// Body-carrying verbs take the request body ahead of options; GET-style
// verbs take no body at all.
type Transport interface {
	Get(ctx context.Context, url string, opts *RequestOptions) (*Response, error)
	Head(ctx context.Context, url string, opts *RequestOptions) (*Response, error)
	Delete(ctx context.Context, url string, opts *RequestOptions) (*Response, error)
	Post(ctx context.Context, url string, body any, opts *RequestOptions) (*Response, error)
	Put(ctx context.Context, url string, body any, opts *RequestOptions) (*Response, error)
	Patch(ctx context.Context, url string, body any, opts *RequestOptions) (*Response, error)
}
