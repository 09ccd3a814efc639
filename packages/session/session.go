// Package session holds the per-builder mutable request state: body data,
// query params, transport options and pending positional URL params,
// accumulated across chained calls and consumed by the next dispatch.
package session

// Session is the scratch space one builder accumulates between
// configuration calls and a dispatch. It is not safe for concurrent use;
// the builder snapshots and resets it synchronously at dispatch time so
// back-to-back requests never observe each other's state.
type Session struct {
	data      map[string]any
	params    map[string]string
	options   map[string]any
	urlParams []any
}

// Snapshot is an immutable per-call copy of the session, taken at
// dispatch time before the transport call can suspend.
type Snapshot struct {
	Data      map[string]any
	Params    map[string]string
	Options   map[string]any
	URLParams []any
}

func New() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// MergeData merges data into the accumulated body data, defaults-style:
// on key collision the existing value wins, and nested maps are merged
// recursively. This preserves "fill in missing fields" semantics across
// chained calls.
func (s *Session) MergeData(data map[string]any) {
	mergeDefaults(s.data, data)
}

// SetParams replaces the whole query-param map.
func (s *Session) SetParams(params map[string]string) {
	s.params = make(map[string]string, len(params))
	for k, v := range params {
		s.params[k] = v
	}
}

// SetParam sets a single query param.
func (s *Session) SetParam(key, value string) {
	s.params[key] = value
}

// SetOptions replaces the whole transport-options map.
func (s *Session) SetOptions(options map[string]any) {
	s.options = make(map[string]any, len(options))
	for k, v := range options {
		s.options[k] = v
	}
}

// SetOption sets a single transport option.
func (s *Session) SetOption(key string, value any) {
	s.options[key] = value
}

// AppendURLParams queues positional URL segments for the next dispatch.
func (s *Session) AppendURLParams(params ...any) {
	s.urlParams = append(s.urlParams, params...)
}

// Data returns a shallow copy of the accumulated body data.
func (s *Session) Data() map[string]any {
	out := make(map[string]any, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

// Params returns a copy of the accumulated query params.
func (s *Session) Params() map[string]string {
	out := make(map[string]string, len(s.params))
	for k, v := range s.params {
		out[k] = v
	}
	return out
}

// Options returns a shallow copy of the accumulated transport options.
func (s *Session) Options() map[string]any {
	out := make(map[string]any, len(s.options))
	for k, v := range s.options {
		out[k] = v
	}
	return out
}

// URLParams returns a copy of the pending positional URL params.
func (s *Session) URLParams() []any {
	out := make([]any, len(s.urlParams))
	copy(out, s.urlParams)
	return out
}

// Snapshot copies the current state without mutating it.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Data:      deepCopy(s.data),
		Params:    s.Params(),
		Options:   s.Options(),
		URLParams: s.URLParams(),
	}
}

// Take snapshots the session and resets it in one step. This is the
// dispatch-time operation: the returned snapshot feeds exactly one
// request attempt, and the live session is clean for the next one.
func (s *Session) Take() Snapshot {
	snap := s.Snapshot()
	s.Reset()
	return snap
}

// Reset clears data, params, options and pending URL params back to
// empty containers.
func (s *Session) Reset() {
	s.data = make(map[string]any)
	s.params = make(map[string]string)
	s.options = make(map[string]any)
	s.urlParams = nil
}

// mergeDefaults copies src keys into dst, keeping existing dst values on
// collision and recursing into nested maps.
func mergeDefaults(dst, src map[string]any) {
	for k, v := range src {
		existing, ok := dst[k]
		if !ok {
			dst[k] = deepCopyValue(v)
			continue
		}
		dstMap, dstOK := existing.(map[string]any)
		srcMap, srcOK := v.(map[string]any)
		if dstOK && srcOK {
			mergeDefaults(dstMap, srcMap)
		}
	}
}

func deepCopy(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	if m, ok := v.(map[string]any); ok {
		return deepCopy(m)
	}
	return v
}
