// Package interpolate renders constraint failure messages.
//
// The package has two halves. Renderer is the adapter a validation run talks
// to: it delegates to an external Interpolator and normalizes its failure
// modes so callers see exactly two error kinds — a validation-domain error
// (constraint.Error) raised deliberately by the interpolator passes through
// unchanged, while every other failure is wrapped into *interpolate.Error
// with the original error retained as the cause. Failures are never
// swallowed and never surface as the interpolator's own arbitrary type.
//
// BundleInterpolator is a ready-made Interpolator backed by per-language
// message bundles loaded from maps or YAML documents. A template of the form
// "{required.message}" is resolved against the bundle selected by language
// matching, recursively, then "%{name}" placeholders are substituted from
// the message parameters and expression variables supplied at report time.
//
// # Usage
//
//	interp := interpolate.NewBundleInterpolator(
//	    interpolate.WithMessages(language.English, map[string]string{
//	        "required.message": "%{field} must not be empty",
//	    }),
//	)
//	r, err := interpolate.NewRenderer(interp, reflect.TypeOf(User{}))
//
// # Error Handling
//
// Use constraint.IsDomainError and IsInterpolationError (or errors.As) to
// distinguish the two kinds; errors.Unwrap on *Error yields the
// interpolator's original failure.
package interpolate
