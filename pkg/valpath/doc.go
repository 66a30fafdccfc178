// Package valpath models traversal paths through an object graph under
// validation.
//
// A Path is an ordered sequence of steps (property, collection index, map
// key) leading from the root bean to the value currently being validated.
// The traversal engine owns one live Path and mutates it in place while
// walking the graph; every component that records a path for later
// comparison takes an independent snapshot with Copy.
//
// Paths compare structurally: two snapshots with equal step sequences are
// equal regardless of when or where they were taken, and IsPrefixOf gives
// position-by-position prefix containment, the primitive the cycle detection
// in the parent module is built on. Key returns a collision-free canonical
// encoding for use as a map key.
package valpath
