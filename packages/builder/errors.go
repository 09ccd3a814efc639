package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidRequestType matches any disallowed-verb error via errors.Is.
var ErrInvalidRequestType = errors.New("invalid request type")

// InvalidRequestTypeError reports a verb outside the configured
// allow-list. It is returned synchronously, before any hook fires or
// any transport call happens: a programmer error, not a transport
// failure.
type InvalidRequestTypeError struct {
	Type string
}

func (e *InvalidRequestTypeError) Error() string {
	return fmt.Sprintf("invalid request type %q", e.Type)
}

func (e *InvalidRequestTypeError) Unwrap() error {
	return ErrInvalidRequestType
}
