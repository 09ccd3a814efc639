package builder

import (
	"fmt"
	"time"

	"github.com/waypost-dev/waypost/packages/session"
	"github.com/waypost-dev/waypost/packages/transport"
)

// shapeRequest turns a session snapshot into transport arguments for the
// given verb. GET-style verbs carry no body: accumulated data merges
// into the query string, with explicit query params winning on
// collision. Body verbs carry the data as the request body.
func shapeRequest(verb string, snap session.Snapshot) (any, *transport.RequestOptions) {
	opts := &transport.RequestOptions{
		Headers: headersFromOptions(snap.Options),
		Params:  snap.Params,
		Timeout: timeoutFromOptions(snap.Options),
		Extra:   snap.Options,
	}
	if opts.Params == nil {
		opts.Params = make(map[string]string)
	}

	switch verb {
	case "get", "head", "delete":
		for k, v := range snap.Data {
			if _, ok := opts.Params[k]; !ok {
				opts.Params[k] = fmt.Sprintf("%v", v)
			}
		}
		return nil, opts
	default:
		if len(snap.Data) == 0 {
			return nil, opts
		}
		return snap.Data, opts
	}
}

// headersFromOptions recognizes a "headers" option holding either a
// map[string]string or a map[string]any.
func headersFromOptions(options map[string]any) map[string]string {
	raw, ok := options["headers"]
	if !ok {
		return nil
	}

	switch h := raw.(type) {
	case map[string]string:
		out := make(map[string]string, len(h))
		for k, v := range h {
			out[k] = v
		}
		return out
	case map[string]any:
		out := make(map[string]string, len(h))
		for k, v := range h {
			out[k] = fmt.Sprintf("%v", v)
		}
		return out
	default:
		return nil
	}
}

// timeoutFromOptions recognizes a "timeout" option holding a
// time.Duration or a millisecond count.
func timeoutFromOptions(options map[string]any) time.Duration {
	raw, ok := options["timeout"]
	if !ok {
		return 0
	}

	switch t := raw.(type) {
	case time.Duration:
		return t
	case int:
		return time.Duration(t) * time.Millisecond
	case int64:
		return time.Duration(t) * time.Millisecond
	case float64:
		return time.Duration(t) * time.Millisecond
	default:
		return 0
	}
}
