// Package builder is the request-building façade: named routes plus
// ad-hoc verb calls over an injected transport.
//
// A Builder accumulates body data, query params and transport options
// through chained WithData/WithParams/WithOptions calls, then consumes
// that state on the next dispatch. State is snapshotted and reset
// synchronously before the transport call, so issuing a second request
// while the first is in flight cannot observe the first one's state.
// The Builder itself is still meant for use from one goroutine at a
// time: interleaving chained configuration calls concurrently remains a
// caller error.
package builder
