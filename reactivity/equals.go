package reactivity

import (
	"math"
	"reflect"
)

// hasChanged reports whether value differs from oldValue using SameValue
// semantics: NaN equals NaN, +0 and -0 differ, and non-comparable values
// (slices, maps, funcs) compare by reference.
func hasChanged(value, oldValue any) bool {
	return !sameValue(value, oldValue)
}

func sameValue(a, b any) bool {
	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		if !ok {
			return false
		}
		if math.IsNaN(x) || math.IsNaN(y) {
			return math.IsNaN(x) && math.IsNaN(y)
		}
		return x == y && math.Signbit(x) == math.Signbit(y)
	case float32:
		y, ok := b.(float32)
		if !ok {
			return false
		}
		return sameValue(float64(x), float64(y))
	}
	return identical(a, b)
}

// sameValueZero is SameValue except that +0 and -0 are equal.
func sameValueZero(a, b any) bool {
	switch x := a.(type) {
	case float64:
		if y, ok := b.(float64); ok && x == 0 && y == 0 {
			return true
		}
	case float32:
		if y, ok := b.(float32); ok && x == 0 && y == 0 {
			return true
		}
	}
	return sameValue(a, b)
}

// strictEquals never matches NaN.
func strictEquals(a, b any) bool {
	switch x := a.(type) {
	case float64:
		if math.IsNaN(x) {
			return false
		}
	case float32:
		if x != x {
			return false
		}
	}
	return sameValueZero(a, b)
}

func identical(a, b any) (eq bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		// A comparable struct may still hold an incomparable value behind an
		// interface field.
		defer func() {
			if recover() != nil {
				eq = false
			}
		}()
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	return false
}
