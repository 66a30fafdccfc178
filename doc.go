// Package graphvalid is the per-run coordination core for validating a
// possibly cyclic, shared-substructure object graph against grouped
// constraint rules.
//
// A Run is created at the start of one top-level validation call and owns
// everything that call mutates: the cycle/group tracker that guarantees
// termination on cyclic graphs, the dedup tracker for rules active in more
// than one group, and the value-deduplicated violation set. Rule discovery,
// rule evaluation, reachability decisions, and message formatting are
// external collaborators (see the constraint and interpolate packages); the
// run forwards their handles and interprets none of them.
//
// # Architecture
//
// The external traversal engine drives the run in depth-first order:
//
//	if !run.AlreadyHandled(bean, group, path) {
//	    for each applicable rule {
//	        if run.AlreadyEvaluated(bean, path, rule) { continue }
//	        // evaluate; on failure:
//	        run.Report(group, rule.MessageTemplate, value, path, rule, params, nil)
//	        run.MarkEvaluated(bean, path, rule)
//	    }
//	    run.MarkHandled(bean, group, path)
//	    // cascade into referenced beans
//	}
//
// AlreadyHandled answers true only when the (bean, group) pair was marked
// before and the new path shares a traversal lineage (prefix relation, or
// either path is the root) with a path already recorded for the bean. That
// is exactly the signature of re-entering a bean through a cycle; a bean
// shared by two sibling branches has no such relation and is validated at
// both locations.
//
// # Concurrency
//
// A Run is single-threaded by contract: the traversal engine makes no
// concurrent calls against one run, and no locking is provided. Concurrent
// validation calls each build their own Run.
//
// # Error Handling
//
// Exactly two error kinds leave the core: validation-domain errors
// (constraint.Error) raised deliberately by collaborators propagate
// unchanged, and unexpected interpolator failures surface as
// *interpolate.Error with the original failure as cause. Tracking and dedup
// operations never fail.
package graphvalid
