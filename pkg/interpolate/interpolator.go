package interpolate

import "reflect"

// Context carries everything an Interpolator may consult while rendering a
// message template.
type Context struct {
	// Template is the unrendered message template.
	Template string

	// Value is the value that failed validation.
	Value any

	// RootType is the type of the root bean of the current run.
	RootType reflect.Type

	// Descriptor is an opaque handle to the failing rule's metadata. It is
	// typed any so that interpolators do not need to depend on the
	// constraint package.
	Descriptor any

	// Parameters holds message parameters for placeholder substitution.
	Parameters map[string]any

	// Expressions holds expression variables for placeholder substitution.
	Expressions map[string]any
}

// Interpolator renders a message template into a final message. An
// implementation may fail with a validation-domain error (constraint.Error),
// which the Renderer passes through unchanged, or with any other error,
// which the Renderer wraps.
type Interpolator interface {
	Interpolate(template string, ctx Context) (string, error)
}

// InterpolatorFunc adapts a plain function to an Interpolator.
type InterpolatorFunc func(template string, ctx Context) (string, error)

func (f InterpolatorFunc) Interpolate(template string, ctx Context) (string, error) {
	return f(template, ctx)
}
