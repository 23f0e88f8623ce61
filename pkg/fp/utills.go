package fp

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Equal reports whether a and b are structurally equal. A payload exposing an
// Equals (or Equal) method that accepts b is asked first; slices and arrays
// are compared element-wise; everything else falls back to == or
// reflect.DeepEqual for non-comparable values.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	if eq, ok := equalsMethod(va, vb); ok {
		return eq
	}

	switch va.Kind() {
	case reflect.Slice, reflect.Array:
		// nil and empty slices compare equal
		if va.Len() != vb.Len() {
			return false
		}
		for i := 0; i < va.Len(); i++ {
			if !Equal(va.Index(i).Interface(), vb.Index(i).Interface()) {
				return false
			}
		}
		return true
	}

	if va.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func equalsMethod(va, vb reflect.Value) (bool, bool) {
	for _, name := range []string{"Equals", "Equal"} {
		m := va.MethodByName(name)
		if !m.IsValid() {
			continue
		}
		mt := m.Type()
		if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool {
			continue
		}
		if !vb.Type().AssignableTo(mt.In(0)) {
			continue
		}
		return m.Call([]reflect.Value{vb})[0].Bool(), true
	}
	return false, false
}
