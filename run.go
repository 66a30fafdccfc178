package graphvalid

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/google/uuid"

	"github.com/dmitrymomot/graphvalid/pkg/constraint"
	"github.com/dmitrymomot/graphvalid/pkg/interpolate"
	"github.com/dmitrymomot/graphvalid/pkg/valpath"
)

// Run is the coordination state for one top-level validation call. It is
// created when the call starts, mutated only by that call's traversal, and
// discarded when the call returns; nothing is cached across runs.
//
// A Run is not safe for concurrent use. Isolation across concurrent
// validation calls comes from giving each call its own Run.
type Run struct {
	id       uuid.UUID
	rootBean any
	rootType reflect.Type
	rootMeta constraint.BeanMetadata

	manager  constraint.ValidatorManager
	resolver constraint.TraversableResolver
	clock    constraint.ClockProvider
	payload  any

	renderer       *interpolate.Renderer
	buildViolation ViolationBuilder
	logger         *slog.Logger

	failFast        bool
	disableTracking bool

	processedGroups map[groupUnit]struct{}
	processedRules  map[ruleUnit]struct{}
	pathsPerBean    map[beanID][]*valpath.Path

	violations []Violation
}

// New creates the run for one validation call. rootBean is the object graph
// root; interp renders failure messages. Collaborator handles and flags are
// supplied through options.
func New(rootBean any, interp interpolate.Interpolator, opts ...Option) (*Run, error) {
	if rootBean == nil {
		return nil, ErrNilRootBean
	}
	if interp == nil {
		return nil, ErrNilInterpolator
	}

	r := &Run{
		id:       uuid.New(),
		rootBean: rootBean,
		rootType: reflect.TypeOf(rootBean),
		clock:    constraint.SystemClock,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),

		processedGroups: make(map[groupUnit]struct{}),
		processedRules:  make(map[ruleUnit]struct{}),
		pathsPerBean:    make(map[beanID][]*valpath.Path),
	}
	r.buildViolation = defaultViolationBuilder

	for _, opt := range opts {
		opt(r)
	}

	renderer, err := interpolate.NewRenderer(interp, r.rootType)
	if err != nil {
		return nil, err
	}
	r.renderer = renderer

	return r, nil
}

// ID returns the run identifier used for log correlation.
func (r *Run) ID() uuid.UUID { return r.id }

// RootBean returns the root of the object graph under validation.
func (r *Run) RootBean() any { return r.rootBean }

// RootType returns the dynamic type of the root bean.
func (r *Run) RootType() reflect.Type { return r.rootType }

// RootMetadata returns the constraint metadata of the root bean, if any was
// supplied.
func (r *Run) RootMetadata() constraint.BeanMetadata { return r.rootMeta }

// ValidatorManager returns the handle supplied at construction. The run does
// not manage evaluator lifecycle itself.
func (r *Run) ValidatorManager() constraint.ValidatorManager { return r.manager }

// TraversableResolver returns the reachability predicate for the traversal
// engine. The run never calls it.
func (r *Run) TraversableResolver() constraint.TraversableResolver { return r.resolver }

// Clock returns the reference clock forwarded into evaluation contexts.
func (r *Run) Clock() constraint.ClockProvider { return r.clock }

// Payload returns the opaque constraint-validator payload, uninterpreted.
func (r *Run) Payload() any { return r.payload }

// FailFast reports whether the traversal engine should stop at the first
// violation. The run itself does not act on it.
func (r *Run) FailFast() bool { return r.failFast }

// NewEvaluationContext builds the per-evaluation context handed to a
// Validator: reference clock, a snapshot of the current path, the rule's
// descriptor, and the opaque payload.
func (r *Run) NewEvaluationContext(d *constraint.Descriptor, path *valpath.Path) *constraint.EvaluationContext {
	return &constraint.EvaluationContext{
		Clock:      r.clock,
		Path:       path.Copy(),
		Descriptor: d,
		Payload:    r.payload,
	}
}

func (r *Run) String() string {
	return fmt.Sprintf("graphvalid.Run{id: %s, rootType: %s, violations: %d}", r.id, r.rootType, len(r.violations))
}
