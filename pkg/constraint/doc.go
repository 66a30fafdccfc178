// Package constraint defines the contracts between a validation run and its
// external collaborators: rule metadata (Descriptor, BeanMetadata,
// MetadataProvider), rule evaluation (Validator, ValidatorManager),
// reachability decisions (TraversableResolver), and the reference clock
// (ClockProvider).
//
// The run itself interprets none of these beyond the single-group vs
// multi-group classification on Descriptor; everything else is forwarded to
// the traversal engine and to individual validators through
// EvaluationContext.
//
// Error is the validation-domain failure kind: collaborators raise it
// deliberately, and it propagates to the top-level caller unchanged (see the
// interpolate package for how other failures are normalized).
package constraint
