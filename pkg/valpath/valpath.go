package valpath

import (
	"strconv"
	"strings"
)

// Kind identifies the sort of a single traversal step.
type Kind int

const (
	// KindProperty is a named field or property access.
	KindProperty Kind = iota
	// KindIndex is an element access in an ordered collection.
	KindIndex
	// KindKey is a value access in a keyed collection.
	KindKey
)

// Step is one hop in a traversal path. Steps are immutable values; two steps
// are equal when their kind and identifying value match.
type Step struct {
	kind  Kind
	name  string
	index int
}

// Kind returns the step kind.
func (s Step) Kind() Kind { return s.kind }

// Name returns the property name or map key. Empty for index steps.
func (s Step) Name() string { return s.name }

// Index returns the element index. Zero for non-index steps.
func (s Step) Index() int { return s.index }

func (s Step) String() string {
	switch s.kind {
	case KindIndex:
		return "[" + strconv.Itoa(s.index) + "]"
	case KindKey:
		return "[" + s.name + "]"
	default:
		return s.name
	}
}

// Path is an ordered sequence of traversal steps from the root bean to the
// value currently under validation. The empty sequence is the root path.
//
// A traversal engine mutates one live Path in place while descending and
// ascending (Append*/Pop). Anything that stores a path for later comparison
// must store an independent snapshot obtained via Copy, never the live
// object.
type Path struct {
	steps []Step
}

// Root returns a new path pointing at the root bean.
func Root() *Path {
	return &Path{}
}

// AppendProperty extends the path in place with a property step and returns
// the same path for chaining.
func (p *Path) AppendProperty(name string) *Path {
	p.steps = append(p.steps, Step{kind: KindProperty, name: name})
	return p
}

// AppendIndex extends the path in place with a collection-index step.
func (p *Path) AppendIndex(i int) *Path {
	p.steps = append(p.steps, Step{kind: KindIndex, index: i})
	return p
}

// AppendKey extends the path in place with a map-key step.
func (p *Path) AppendKey(key string) *Path {
	p.steps = append(p.steps, Step{kind: KindKey, name: key})
	return p
}

// Pop removes the leaf step, undoing the most recent Append. Popping the root
// path is a no-op.
func (p *Path) Pop() *Path {
	if len(p.steps) > 0 {
		p.steps = p.steps[:len(p.steps)-1]
	}
	return p
}

// Copy returns an independent snapshot of the path. Mutating the receiver
// afterwards does not affect the copy.
func (p *Path) Copy() *Path {
	steps := make([]Step, len(p.steps))
	copy(steps, p.steps)
	return &Path{steps: steps}
}

// IsRoot reports whether the path points at the root bean.
func (p *Path) IsRoot() bool { return len(p.steps) == 0 }

// Len returns the number of steps.
func (p *Path) Len() int { return len(p.steps) }

// Steps returns a copy of the step sequence.
func (p *Path) Steps() []Step {
	steps := make([]Step, len(p.steps))
	copy(steps, p.steps)
	return steps
}

// Equal reports whether both paths have the same step sequence. Snapshot
// instances are interchangeable: only the steps matter.
func (p *Path) Equal(other *Path) bool {
	if other == nil || len(p.steps) != len(other.steps) {
		return false
	}
	for i, s := range p.steps {
		if s != other.steps[i] {
			return false
		}
	}
	return true
}

// IsPrefixOf reports whether the receiver's steps match other's steps
// position by position up to the receiver's length. The root path is a
// prefix of every path, and every path is a prefix of itself.
func (p *Path) IsPrefixOf(other *Path) bool {
	if other == nil || len(p.steps) > len(other.steps) {
		return false
	}
	for i, s := range p.steps {
		if s != other.steps[i] {
			return false
		}
	}
	return true
}

// String renders the path in property notation, e.g. "addresses[0].city".
// The root path renders as the empty string.
func (p *Path) String() string {
	var b strings.Builder
	for i, s := range p.steps {
		if s.kind == KindProperty && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// Key returns a canonical encoding of the step sequence, unique per distinct
// sequence, suitable as a map key. Names are quoted so that property names
// containing dots or brackets cannot collide with structural markers.
func (p *Path) Key() string {
	var b strings.Builder
	for _, s := range p.steps {
		switch s.kind {
		case KindIndex:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
		case KindKey:
			b.WriteByte('[')
			b.WriteString(strconv.Quote(s.name))
			b.WriteByte(']')
		default:
			b.WriteByte('.')
			b.WriteString(strconv.Quote(s.name))
		}
	}
	return b.String()
}
