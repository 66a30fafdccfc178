package graphvalid

import (
	"github.com/dmitrymomot/graphvalid/pkg/constraint"
	"github.com/dmitrymomot/graphvalid/pkg/logger"
	"github.com/dmitrymomot/graphvalid/pkg/valpath"
)

// groupUnit records that a bean has been validated for a group at least once
// somewhere in the graph.
type groupUnit struct {
	bean  beanID
	group constraint.Group
}

// AlreadyHandled reports whether validating bean for group at path would
// repeat work already done in this run. It answers true only when the
// (bean, group) pair was marked handled before AND one of the paths
// previously recorded for the bean (under any group) lies on the same
// traversal lineage as path.
//
// The lineage test is what keeps the check sound for shared, non-cyclic
// substructure: a bean reached through two unrelated property chains shares
// no prefix relation between the chains, so it is validated at both
// locations. Re-entering a bean through a cycle always extends one of its
// recorded paths, so recursion terminates. A root path on either side always
// counts as the same lineage; once a bean was seen at the root, any revisit
// is handled. That deliberately trades an occasional suppressed top-level
// re-evaluation for guaranteed termination on self-referencing roots.
func (r *Run) AlreadyHandled(bean any, group constraint.Group, path *valpath.Path) bool {
	if r.disableTracking {
		return false
	}
	id, ok := identityOf(bean)
	if !ok {
		return false
	}
	if _, seen := r.processedGroups[groupUnit{bean: id, group: group}]; !seen {
		return false
	}
	return r.handledOnLineage(id, path)
}

func (r *Run) handledOnLineage(id beanID, path *valpath.Path) bool {
	for _, p := range r.pathsPerBean[id] {
		if path.IsRoot() || p.IsRoot() || p.IsPrefixOf(path) || path.IsPrefixOf(p) {
			return true
		}
	}
	return false
}

// MarkHandled records that bean has been validated for group at path. The
// traversal engine must call it after deciding to visit and before recursing
// into the bean's referenced properties, so that re-entry during that
// recursion is caught. The stored path is an independent snapshot; the live
// path keeps mutating as traversal continues.
func (r *Run) MarkHandled(bean any, group constraint.Group, path *valpath.Path) {
	if r.disableTracking {
		return
	}
	id, ok := identityOf(bean)
	if !ok {
		return
	}

	r.processedGroups[groupUnit{bean: id, group: group}] = struct{}{}

	for _, p := range r.pathsPerBean[id] {
		if p.Equal(path) {
			return
		}
	}
	r.pathsPerBean[id] = append(r.pathsPerBean[id], path.Copy())

	r.logger.Debug("bean marked as processed",
		logger.RunID(r.id),
		logger.GroupName(group),
		logger.Path(path),
	)
}
