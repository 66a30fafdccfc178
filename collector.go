package graphvalid

import (
	"reflect"

	"github.com/dmitrymomot/graphvalid/pkg/constraint"
	"github.com/dmitrymomot/graphvalid/pkg/logger"
	"github.com/dmitrymomot/graphvalid/pkg/valpath"
)

// Violation is an immutable failure record: the rendered message, a path
// snapshot, the failing rule, the validated value, and the group under which
// the failure occurred.
type Violation struct {
	MessageTemplate string
	Message         string
	Path            *valpath.Path
	Descriptor      *constraint.Descriptor
	Value           any
	Group           constraint.Group
}

// Equal is the dedup predicate for the failure set: rendered message, path,
// rule identity, validated value, and group must all match. The template is
// deliberately not part of it.
func (v Violation) Equal(other Violation) bool {
	return v.Message == other.Message &&
		v.Group == other.Group &&
		v.Descriptor == other.Descriptor &&
		pathEqual(v.Path, other.Path) &&
		valueEqual(v.Value, other.Value)
}

// pathEqual tolerates records without a path; a custom ViolationBuilder may
// drop it. Two nil paths are equal.
func pathEqual(a, b *valpath.Path) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}

// valueEqual compares validated values without panicking on non-comparable
// types.
func valueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}

// ViolationBuilder assembles a violation record. The path is already an
// independent snapshot when the builder runs. Replacing the builder via
// WithViolationBuilder lets callers decorate records for their validation
// flavor without a run subtype.
type ViolationBuilder func(template, message string, path *valpath.Path, d *constraint.Descriptor, value any, group constraint.Group) Violation

func defaultViolationBuilder(template, message string, path *valpath.Path, d *constraint.Descriptor, value any, group constraint.Group) Violation {
	return Violation{
		MessageTemplate: template,
		Message:         message,
		Path:            path,
		Descriptor:      d,
		Value:           value,
		Group:           group,
	}
}

// Report renders the failure message and adds a violation to the run's
// failure set. The path snapshot is taken here, synchronously: the live path
// keeps mutating as traversal continues, so deferring the copy would corrupt
// the record.
//
// A rendering failure aborts the report: a validation-domain error from the
// interpolator propagates unchanged, anything else surfaces as
// *interpolate.Error with the original failure as cause.
func (r *Run) Report(group constraint.Group, template string, value any, path *valpath.Path, d *constraint.Descriptor, params, exprs map[string]any) error {
	message, err := r.renderer.Render(template, value, d, params, exprs)
	if err != nil {
		return err
	}

	v := r.buildViolation(template, message, path.Copy(), d, value, group)

	for _, existing := range r.violations {
		if existing.Equal(v) {
			return nil
		}
	}
	r.violations = append(r.violations, v)

	r.logger.Debug("constraint violation recorded",
		logger.RunID(r.id),
		logger.GroupName(group),
		logger.Path(v.Path),
		logger.Rule(d),
		logger.Violations(len(r.violations)),
	)
	return nil
}

// Violations returns the accumulated failure records in report order,
// duplicates collapsed to their first occurrence. The returned slice is a
// copy.
func (r *Run) Violations() []Violation {
	out := make([]Violation, len(r.violations))
	copy(out, r.violations)
	return out
}
