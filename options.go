package graphvalid

import (
	"log/slog"

	"github.com/dmitrymomot/graphvalid/pkg/constraint"
)

// Option configures a Run at construction time.
type Option func(*Run)

// WithMetadata sets the root bean's constraint metadata.
func WithMetadata(meta constraint.BeanMetadata) Option {
	return func(r *Run) { r.rootMeta = meta }
}

// WithValidatorManager sets the handle that supplies and caches validator
// instances. The run only forwards it.
func WithValidatorManager(m constraint.ValidatorManager) Option {
	return func(r *Run) { r.manager = m }
}

// WithTraversableResolver sets the reachability predicate forwarded to the
// traversal engine.
func WithTraversableResolver(tr constraint.TraversableResolver) Option {
	return func(r *Run) { r.resolver = tr }
}

// WithClock sets the reference clock for time-based constraints. Nil clocks
// are ignored, keeping the system clock.
func WithClock(c constraint.ClockProvider) Option {
	return func(r *Run) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithPayload sets the opaque constraint-validator payload forwarded into
// evaluation contexts.
func WithPayload(payload any) Option {
	return func(r *Run) { r.payload = payload }
}

// WithLogger sets the run's logging sink. Nil loggers are ignored; the
// default sink discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Run) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithFailFast sets the fail-fast flag inspected by the traversal engine.
func WithFailFast(enabled bool) Option {
	return func(r *Run) { r.failFast = enabled }
}

// WithTrackingDisabled turns off already-validated bean tracking: every
// AlreadyHandled query answers false and every MarkHandled is a no-op,
// forcing full re-validation. Only traversal modes that bound recursion
// themselves should use this.
func WithTrackingDisabled() Option {
	return func(r *Run) { r.disableTracking = true }
}

// WithViolationBuilder replaces the strategy that assembles violation
// records, letting callers attach flavor-specific construction without
// subclassing the run. Nil builders are ignored.
func WithViolationBuilder(b ViolationBuilder) Option {
	return func(r *Run) {
		if b != nil {
			r.buildViolation = b
		}
	}
}

// WithSettings applies environment-derived settings to the run.
func WithSettings(s Settings) Option {
	return func(r *Run) {
		r.failFast = s.FailFast
		r.disableTracking = s.DisableProcessedTracking
	}
}
