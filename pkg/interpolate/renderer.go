package interpolate

import (
	"errors"
	"reflect"

	"github.com/dmitrymomot/graphvalid/pkg/constraint"
)

// Renderer wraps an external Interpolator and normalizes its failure modes.
// A validation-domain error (constraint.Error) raised by the interpolator
// passes through unchanged; any other failure is wrapped into *Error with
// the original as cause, so callers see exactly two error kinds.
type Renderer struct {
	interpolator Interpolator
	rootType     reflect.Type
}

// NewRenderer creates a renderer delegating to the given interpolator.
// rootType identifies the root bean type of the run and is exposed to the
// interpolator through the context.
func NewRenderer(i Interpolator, rootType reflect.Type) (*Renderer, error) {
	if i == nil {
		return nil, ErrNilInterpolator
	}
	return &Renderer{interpolator: i, rootType: rootType}, nil
}

// Render resolves the final message for a failing rule.
func (r *Renderer) Render(template string, value any, d *constraint.Descriptor, params, exprs map[string]any) (string, error) {
	out, err := r.interpolator.Interpolate(template, Context{
		Template:    template,
		Value:       value,
		RootType:    r.rootType,
		Descriptor:  d,
		Parameters:  params,
		Expressions: exprs,
	})
	if err != nil {
		var domain *constraint.Error
		if errors.As(err, &domain) {
			return "", err
		}
		return "", &Error{Template: template, Cause: err}
	}
	return out, nil
}
