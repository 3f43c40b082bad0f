package triad

import "reflect"

// IsNil reports whether i is nil, either as an untyped nil interface or
// as a nil-valued pointer, map, slice, channel or function.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

// valueEqual compares two held values structurally. Values that are
// both errors compare by message, so independently captured failures
// with the same message are equal.
func valueEqual(a, b any) bool {
	ae, aok := a.(error)
	be, bok := b.(error)
	if aok || bok {
		if !aok || !bok {
			return false
		}
		return ae.Error() == be.Error()
	}
	return reflect.DeepEqual(a, b)
}
