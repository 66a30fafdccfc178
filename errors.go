package graphvalid

import "errors"

var (
	// ErrNilRootBean is returned when a run is created without a root bean.
	ErrNilRootBean = errors.New("root bean is nil")

	// ErrNilInterpolator is returned when a run is created without a message
	// interpolator.
	ErrNilInterpolator = errors.New("message interpolator is nil")

	// ErrInvalidMessageLanguage is returned when the configured message
	// language is not a valid BCP 47 tag.
	ErrInvalidMessageLanguage = errors.New("invalid message language tag")
)
