package builder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/waypost-dev/waypost/packages/core/config"
	"github.com/waypost-dev/waypost/packages/core/logger"
	"github.com/waypost-dev/waypost/packages/history"
	"github.com/waypost-dev/waypost/packages/metrics"
	"github.com/waypost-dev/waypost/packages/routes"
	"github.com/waypost-dev/waypost/packages/session"
	"github.com/waypost-dev/waypost/packages/transport"
	"github.com/waypost-dev/waypost/packages/urlkit"
)

// BeforeRequestHook fires exactly once before every dispatch, after verb
// validation. Its return value is unused.
type BeforeRequestHook func(verb, url string)

// AfterRequestHook fires after a successful dispatch with the transport
// response, which is then returned to the caller unchanged.
type AfterRequestHook func(resp *transport.Response)

// ErrorHook fires after a failed dispatch with the transport error,
// which is then returned to the caller unchanged.
type ErrorHook func(err error)

// Builder issues one outbound HTTP call per invocation against an
// injected transport, resolving named routes and accumulating session
// state between calls.
type Builder struct {
	cfg     *config.Config
	trans   transport.Transport
	debug   transport.Transport
	table   *routes.Table
	session *session.Session
	log     *slog.Logger

	beforeRequest BeforeRequestHook
	afterRequest  AfterRequestHook
	onError       ErrorHook

	metrics *metrics.Recorder
	history *history.Store
}

// Option is a functional option for Builder
type Option func(*Builder)

// WithRoutes replaces the route table built from the config's inline
// routes.
func WithRoutes(table *routes.Table) Option {
	return func(b *Builder) {
		b.table = table
	}
}

// WithBeforeRequest sets the before-request hook.
func WithBeforeRequest(hook BeforeRequestHook) Option {
	return func(b *Builder) {
		b.beforeRequest = hook
	}
}

// WithAfterRequest sets the after-request hook.
func WithAfterRequest(hook AfterRequestHook) Option {
	return func(b *Builder) {
		b.afterRequest = hook
	}
}

// WithOnError sets the error hook.
func WithOnError(hook ErrorHook) Option {
	return func(b *Builder) {
		b.onError = hook
	}
}

// WithDebugTransport replaces the fake transport used when the config
// has debug enabled.
func WithDebugTransport(t transport.Transport) Option {
	return func(b *Builder) {
		b.debug = t
	}
}

// WithMetrics records every dispatch outcome into rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(b *Builder) {
		b.metrics = rec
	}
}

// WithHistory logs every dispatch into the request history store.
func WithHistory(store *history.Store) Option {
	return func(b *Builder) {
		b.history = store
	}
}

// WithLogger sets the logger used for non-fatal internal failures.
func WithLogger(log *slog.Logger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

// New creates a Builder over the given transport. A nil cfg uses
// defaults; inline config routes seed the route table.
func New(cfg *config.Config, t transport.Transport, opts ...Option) *Builder {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	b := &Builder{
		cfg:     cfg,
		trans:   t,
		debug:   transport.NewFake(),
		table:   routes.NewTable(cfg.Routes),
		session: session.New(),
		log:     logger.Discard(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Session exposes the live session, mainly for inspection in tests.
func (b *Builder) Session() *session.Session {
	return b.session
}

// Routes exposes the route table.
func (b *Builder) Routes() *routes.Table {
	return b.table
}

// WithData deep-merges data into the accumulated body data; existing
// values win on key collision.
func (b *Builder) WithData(data map[string]any) *Builder {
	b.session.MergeData(data)
	return b
}

// WithParams replaces the accumulated query params.
func (b *Builder) WithParams(params map[string]string) *Builder {
	b.session.SetParams(params)
	return b
}

// WithParam sets a single query param.
func (b *Builder) WithParam(key, value string) *Builder {
	b.session.SetParam(key, value)
	return b
}

// WithOptions replaces the accumulated transport options.
func (b *Builder) WithOptions(options map[string]any) *Builder {
	b.session.SetOptions(options)
	return b
}

// WithOption sets a single transport option.
func (b *Builder) WithOption(key string, value any) *Builder {
	b.session.SetOption(key, value)
	return b
}

func (b *Builder) Get(ctx context.Context, segments ...any) (*transport.Response, error) {
	return b.Invoke(ctx, "get", segments...)
}

func (b *Builder) Head(ctx context.Context, segments ...any) (*transport.Response, error) {
	return b.Invoke(ctx, "head", segments...)
}

func (b *Builder) Delete(ctx context.Context, segments ...any) (*transport.Response, error) {
	return b.Invoke(ctx, "delete", segments...)
}

func (b *Builder) Post(ctx context.Context, segments ...any) (*transport.Response, error) {
	return b.Invoke(ctx, "post", segments...)
}

func (b *Builder) Put(ctx context.Context, segments ...any) (*transport.Response, error) {
	return b.Invoke(ctx, "put", segments...)
}

func (b *Builder) Patch(ctx context.Context, segments ...any) (*transport.Response, error) {
	return b.Invoke(ctx, "patch", segments...)
}

// Invoke dispatches verb against the URL built from the base URL, any
// pending positional params and the given segments. A verb outside the
// allow-list returns *InvalidRequestTypeError without consuming session
// state or calling any hook.
func (b *Builder) Invoke(ctx context.Context, verb string, segments ...any) (*transport.Response, error) {
	verb = strings.ToLower(verb)
	if !b.cfg.IsAllowedRequestType(verb) {
		return nil, &InvalidRequestTypeError{Type: verb}
	}

	b.session.AppendURLParams(segments...)
	snap := b.session.Take()

	url := b.positionalURL(snap.URLParams)
	return b.dispatch(ctx, verb, "", url, snap)
}

// Route dispatches the named route's verb against its resolved URL.
// requestParams, when non-empty, replace the accumulated query params
// first. An unknown name resolves to an empty GET: the dispatch then
// degrades to the bare base URL rather than erroring, mirroring the
// empty-string sentinel Generate returns.
func (b *Builder) Route(ctx context.Context, name string, routeParams routes.Params, requestParams map[string]string) (*transport.Response, error) {
	resolved := b.table.Resolve(name, routeParams)

	verb := strings.ToLower(resolved.Method)
	if !b.cfg.IsAllowedRequestType(verb) {
		return nil, &InvalidRequestTypeError{Type: verb}
	}

	if len(requestParams) > 0 {
		b.session.SetParams(requestParams)
	}
	snap := b.session.Take()

	url := b.joinBase(resolved.URL)
	return b.dispatch(ctx, verb, name, url, snap)
}

// Generate resolves a named route to its full URL without dispatching.
// Unknown names yield "".
func (b *Builder) Generate(name string, routeParams routes.Params) string {
	resolved := b.table.Resolve(name, routeParams)
	if resolved.URL == "" {
		return ""
	}
	return b.joinBase(resolved.URL)
}

func (b *Builder) positionalURL(urlParams []any) string {
	segments := make([]string, len(urlParams))
	for i, p := range urlParams {
		segments[i] = fmt.Sprintf("%v", p)
	}
	return urlkit.Sanitize(urlkit.Join(b.cfg.BaseURL, segments...), b.cfg.GetTrailingSlash())
}

func (b *Builder) joinBase(path string) string {
	return urlkit.Sanitize(urlkit.Join(b.cfg.BaseURL, path), b.cfg.GetTrailingSlash())
}

func (b *Builder) dispatch(ctx context.Context, verb, routeName, url string, snap session.Snapshot) (*transport.Response, error) {
	body, opts := shapeRequest(verb, snap)
	if opts.Timeout == 0 && b.cfg.Timeout > 0 {
		opts.Timeout = time.Duration(b.cfg.Timeout) * time.Millisecond
	}

	if b.beforeRequest != nil {
		b.beforeRequest(verb, url)
	}

	t := b.trans
	if b.cfg.GetDebug() {
		t = b.debug
	}

	start := time.Now()
	resp, err := invokeVerb(ctx, t, verb, url, body, opts)
	duration := time.Since(start)

	b.observe(routeName, verb, url, resp, duration, err)

	if err != nil {
		if b.onError != nil {
			b.onError(err)
		}
		return nil, err
	}

	if b.afterRequest != nil {
		b.afterRequest(resp)
	}
	return resp, nil
}

// invokeVerb maps a validated verb name to the matching transport
// method. The allow-list may admit names outside the fixed transport
// contract; those fail here, still before any network activity.
func invokeVerb(ctx context.Context, t transport.Transport, verb, url string, body any, opts *transport.RequestOptions) (*transport.Response, error) {
	switch verb {
	case "get":
		return t.Get(ctx, url, opts)
	case "head":
		return t.Head(ctx, url, opts)
	case "delete":
		return t.Delete(ctx, url, opts)
	case "post":
		return t.Post(ctx, url, body, opts)
	case "put":
		return t.Put(ctx, url, body, opts)
	case "patch":
		return t.Patch(ctx, url, body, opts)
	default:
		return nil, &InvalidRequestTypeError{Type: verb}
	}
}

func (b *Builder) observe(routeName, verb, url string, resp *transport.Response, duration time.Duration, err error) {
	if b.metrics != nil {
		b.metrics.Record(routeName, duration, err)
	}

	if b.history != nil {
		rec := &history.Record{
			Method:   strings.ToUpper(verb),
			URL:      url,
			Route:    routeName,
			Duration: duration,
		}
		if resp != nil {
			rec.Status = resp.StatusCode
		}
		if err != nil {
			rec.Error = err.Error()
		}
		if appendErr := b.history.Append(rec); appendErr != nil {
			b.log.Warn("failed to record request history", "error", appendErr)
		}
	}
}
