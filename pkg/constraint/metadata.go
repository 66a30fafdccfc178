package constraint

import "reflect"

// BeanMetadata exposes the constraints discovered for one bean type.
// Implementations are supplied by a metadata provider and must be read-only
// for the lifetime of a validation run.
type BeanMetadata interface {
	// BeanType returns the type the metadata describes.
	BeanType() reflect.Type

	// Constraints returns the type-level rules.
	Constraints() []*Descriptor

	// PropertyConstraints returns the rules bound to the named property.
	PropertyConstraints(property string) []*Descriptor
}

// MetadataProvider answers which rules and groups apply to a type. The
// validation run holds the root type's metadata; the traversal engine asks
// the provider for metadata of every cascaded bean it descends into.
type MetadataProvider interface {
	MetadataFor(t reflect.Type) (BeanMetadata, error)
}
