package graphvalid

import "reflect"

// beanID keys the tracking sets by reference identity. The pointer alone is
// not enough: a struct and its first field share an address, so the dynamic
// type is part of the key.
type beanID struct {
	ptr uintptr
	typ reflect.Type
}

// identityOf derives a reference-identity key for a bean. Only reference
// kinds have a stable identity; plain values report ok=false and are never
// tracked, which is safe because a cycle in a Go object graph must pass
// through a pointer, map, or slice.
func identityOf(bean any) (beanID, bool) {
	if bean == nil {
		return beanID{}, false
	}
	rv := reflect.ValueOf(bean)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return beanID{}, false
		}
		return beanID{ptr: rv.Pointer(), typ: rv.Type()}, true
	default:
		return beanID{}, false
	}
}
