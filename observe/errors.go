package observe

import (
	"errors"
	"fmt"
)

// ErrInvalidSelector is matched by every InvalidSelectorError, i.e.
// errors.Is(err, ErrInvalidSelector) holds.
var ErrInvalidSelector = errors.New("invalid selector")

// ErrNilLog is returned if an observation is registered without an output log.
var ErrNilLog = errors.New("output log is nil")

// InvalidSelectorError is returned when registering an observation with a
// selector which is not "*" or a single tag name.
type InvalidSelectorError struct {
	Selector string // selector as given by the client
	Reason   string // what is wrong with it
	Cause    error  // parse error, if the selector is not even valid CSS
}

func (e *InvalidSelectorError) Error() string {
	msg := fmt.Sprintf("invalid selector %q: %s", e.Selector, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the parse error, if any.
func (e *InvalidSelectorError) Unwrap() error {
	return e.Cause
}

// Is makes InvalidSelectorError match ErrInvalidSelector.
func (e *InvalidSelectorError) Is(target error) bool {
	return target == ErrInvalidSelector
}
