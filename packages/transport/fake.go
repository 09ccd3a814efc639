package transport

import (
	"context"
	"net/http"
	"sync"
)

// FakeCall records one invocation against a Fake transport.
type FakeCall struct {
	Method  string
	URL     string
	Body    any
	Options *RequestOptions
}

// Fake is the debug Transport: it records every call and returns a
// canned response (or error) without touching the network.
type Fake struct {
	mu       sync.Mutex
	calls    []FakeCall
	response *Response
	err      error
}

// FakeOption is a functional option for Fake
type FakeOption func(*Fake)

// WithResponse sets the canned response returned by every call.
func WithResponse(resp *Response) FakeOption {
	return func(f *Fake) {
		f.response = resp
	}
}

// WithError makes every call fail with err.
func WithError(err error) FakeOption {
	return func(f *Fake) {
		f.err = err
	}
}

// NewFake creates a fake transport. With no options it answers every
// call with an empty 200 response.
func NewFake(opts ...FakeOption) *Fake {
	f := &Fake{
		response: &Response{
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       []byte(`{}`),
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Calls returns a copy of the recorded calls in order.
func (f *Fake) Calls() []FakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]FakeCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// LastCall returns the most recent recorded call.
func (f *Fake) LastCall() (FakeCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return FakeCall{}, false
	}
	return f.calls[len(f.calls)-1], true
}

func (f *Fake) record(method, url string, body any, opts *RequestOptions) (*Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, FakeCall{Method: method, URL: url, Body: body, Options: opts})
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func (f *Fake) Get(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return f.record(http.MethodGet, url, nil, opts)
}

func (f *Fake) Head(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return f.record(http.MethodHead, url, nil, opts)
}

func (f *Fake) Delete(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return f.record(http.MethodDelete, url, nil, opts)
}

func (f *Fake) Post(ctx context.Context, url string, body any, opts *RequestOptions) (*Response, error) {
	return f.record(http.MethodPost, url, body, opts)
}

func (f *Fake) Put(ctx context.Context, url string, body any, opts *RequestOptions) (*Response, error) {
	return f.record(http.MethodPut, url, body, opts)
}

func (f *Fake) Patch(ctx context.Context, url string, body any, opts *RequestOptions) (*Response, error) {
	return f.record(http.MethodPatch, url, body, opts)
}
