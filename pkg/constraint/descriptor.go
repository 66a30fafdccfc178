package constraint

// Group names a subset of rules evaluated together in one validation pass.
// Groups are opaque tokens compared by value.
type Group string

// DefaultGroup is the group a rule belongs to when none is declared.
const DefaultGroup Group = "default"

// Descriptor describes a single constraint rule instance bound to a type or
// property. Descriptors are produced by a metadata provider and treated as
// read-only by the validation run.
//
// Rule identity is the *Descriptor pointer: two descriptors with equal fields
// are still two distinct rules. Dedup bookkeeping relies on this.
type Descriptor struct {
	// Name identifies the constraint kind, e.g. "required" or "max_length".
	Name string

	// MessageTemplate is the unrendered failure message, resolved and
	// parameter-substituted by the message interpolator at report time.
	MessageTemplate string

	// Groups lists the groups this rule participates in. An empty list is
	// equivalent to the default group alone.
	Groups []Group

	// Parameters holds constraint attributes (limits, patterns) exposed to
	// validators and to message interpolation.
	Parameters map[string]any
}

// DefinedForSingleGroup reports whether the rule participates in at most one
// group. Single-group rules are exempt from cross-group dedup bookkeeping:
// one traversal can only ever evaluate them once per path.
func (d *Descriptor) DefinedForSingleGroup() bool {
	return len(d.Groups) <= 1
}

// InGroup reports whether the rule participates in g. A rule with no declared
// groups participates in DefaultGroup only.
func (d *Descriptor) InGroup(g Group) bool {
	if len(d.Groups) == 0 {
		return g == DefaultGroup
	}
	for _, dg := range d.Groups {
		if dg == g {
			return true
		}
	}
	return false
}
