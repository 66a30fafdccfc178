package constraint

import (
	"reflect"
	"time"

	"github.com/dmitrymomot/graphvalid/pkg/valpath"
)

// Validator evaluates one constraint rule against a value.
type Validator interface {
	IsValid(value any, ectx *EvaluationContext) bool
}

// ValidatorManager supplies and caches Validator instances for descriptors.
// The validation run only forwards the handle; evaluator lifecycle is the
// manager's concern.
type ValidatorManager interface {
	ValidatorFor(d *Descriptor) (Validator, error)
}

// TraversableResolver decides whether a property may be read or cascaded
// into. It is consulted by the traversal engine only; the validation run
// merely carries the handle.
type TraversableResolver interface {
	IsReachable(bean any, property string, rootType reflect.Type, path *valpath.Path) bool
	IsCascadable(bean any, property string, rootType reflect.Type, path *valpath.Path) bool
}

// ClockProvider supplies the reference time for time-based constraints.
type ClockProvider interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to a ClockProvider.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock ClockProvider = ClockFunc(time.Now)

// EvaluationContext carries per-evaluation collaborators into a Validator.
// Clock and Payload are forwarded by the run uninterpreted; Path is a
// snapshot taken when the context was built.
type EvaluationContext struct {
	Clock      ClockProvider
	Path       *valpath.Path
	Descriptor *Descriptor
	Payload    any
}
