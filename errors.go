package lucid

import (
	"errors"
	"fmt"
)

// Sentinel errors for component operations.
var (
	ErrNotFound    = errors.New("lucid: component not found")
	ErrInvalidProp = errors.New("lucid: invalid prop")
	ErrMissingProp = errors.New("lucid: required prop missing")
)

// PropError describes a prop that failed its declared type. Prop errors are
// reported as warnings and never stop a render.
type PropError struct {
	Component string
	Prop      string
	Reason    string
	Err       error
}

func (e *PropError) Error() string {
	return fmt.Sprintf("%s: prop %q: %s", e.Component, e.Prop, e.Reason)
}

func (e *PropError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsPropError checks if err reports an invalid or missing prop.
func IsPropError(err error) bool {
	return errors.Is(err, ErrInvalidProp) || errors.Is(err, ErrMissingProp)
}
