// Package routes implements URL templating and the named route table.
//
// A route is a named (method, URL template) pair configured ahead of time.
// Templates contain {placeholder} tokens that are substituted with runtime
// parameters at resolution time. Lookups never fail: unknown names resolve
// to an empty definition and callers treat the empty URL as the
// not-found sentinel.
package routes
