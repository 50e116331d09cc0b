package action

import (
	"math"
	"reflect"
)

// ShallowEqual reports whether a and b are the same value without looking
// inside composites. Slices, maps, channels and pointers are equal only when
// they share storage; funcs are equal when they share code. Other values use
// ==, except that NaN equals NaN, and a comparison that would panic is
// treated as unequal.
func ShallowEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Chan, reflect.Pointer, reflect.UnsafePointer, reflect.Func:
		return va.Pointer() == vb.Pointer()
	case reflect.Float32, reflect.Float64:
		return floatEqual(va.Float(), vb.Float())
	case reflect.Complex64, reflect.Complex128:
		x, y := va.Complex(), vb.Complex()
		return floatEqual(real(x), real(y)) && floatEqual(imag(x), imag(y))
	}
	if !va.Type().Comparable() {
		return false
	}
	return comparableEqual(a, b)
}

// comparableEqual guards against interface fields holding uncomparable values.
func comparableEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func valuesEqual(prev, next []any) bool {
	if len(prev) != len(next) {
		return false
	}
	for i := range prev {
		if !ShallowEqual(prev[i], next[i]) {
			return false
		}
	}
	return true
}

func floatEqual(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}
