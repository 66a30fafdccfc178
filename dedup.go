package graphvalid

import (
	"github.com/dmitrymomot/graphvalid/pkg/constraint"
	"github.com/dmitrymomot/graphvalid/pkg/valpath"
)

// ruleUnit records that one multi-group rule instance has been evaluated for
// a bean at an exact path. Rule identity is the descriptor pointer; path
// equality is exact, no prefix relaxation — this is not cycle-breaking, it
// only prevents re-running the identical rule when group evaluation order
// revisits the same (bean, path) from another group.
type ruleUnit struct {
	bean    beanID
	rule    *constraint.Descriptor
	pathKey string
}

// AlreadyEvaluated reports whether the rule has already been evaluated for
// bean at exactly this path. Rules defined for a single group are exempt and
// always answer false: one traversal cannot evaluate them twice per path.
func (r *Run) AlreadyEvaluated(bean any, path *valpath.Path, d *constraint.Descriptor) bool {
	if d == nil || d.DefinedForSingleGroup() {
		return false
	}
	id, ok := identityOf(bean)
	if !ok {
		return false
	}
	_, seen := r.processedRules[ruleUnit{bean: id, rule: d, pathKey: path.Key()}]
	return seen
}

// MarkEvaluated records the evaluation. A no-op for single-group rules.
func (r *Run) MarkEvaluated(bean any, path *valpath.Path, d *constraint.Descriptor) {
	if d == nil || d.DefinedForSingleGroup() {
		return
	}
	id, ok := identityOf(bean)
	if !ok {
		return
	}
	r.processedRules[ruleUnit{bean: id, rule: d, pathKey: path.Key()}] = struct{}{}
}
