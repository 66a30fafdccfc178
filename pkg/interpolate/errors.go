package interpolate

import (
	"errors"
	"fmt"
)

// ErrNilInterpolator is returned when a Renderer is constructed without an
// interpolator.
var ErrNilInterpolator = errors.New("interpolator is nil")

// Error reports that message interpolation failed for a reason other than a
// deliberate validation-domain error. The interpolator's original failure is
// retained as the cause and is reachable through errors.Unwrap/As.
type Error struct {
	Template string
	Cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("message interpolation failed for template %q: %v", e.Template, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// IsInterpolationError reports whether err is (or wraps) an interpolation
// failure.
func IsInterpolationError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
