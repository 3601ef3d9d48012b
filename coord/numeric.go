// SPDX-License-Identifier: MIT
// Package coord: element-kind classification.
//
// Purpose:
//   - Give generic code one place to ask "what kind of number is this?"
//     without a type switch per element type.
//   - Back mixed-type comparison (Equal2) and component rendering.
//
// Comparison rules (numEqual):
//   - Either side float   -> both widened to float64, compared with ==.
//   - Both signed         -> compared as int64.
//   - Both unsigned       -> compared as uint64.
//   - Signed vs unsigned  -> a negative signed value never equals an
//     unsigned one; otherwise compared as uint64. Nothing wraps.
//
// The result does not depend on argument order.

package coord

import "reflect"

// numKind is the storage class of an element value.
type numKind uint8

const (
	kindFloat numKind = iota
	kindSigned
	kindUnsigned
)

// number is an element value lifted into its widest type of the same kind.
type number struct {
	kind numKind
	f    float64
	i    int64
	u    uint64
}

// toNumber classifies v by its underlying kind, so named types such as
// `type Meters float64` are handled like their base type.
func toNumber[T Number](v T) number {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return number{kind: kindFloat, f: rv.Float()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: kindSigned, i: rv.Int()}
	default:
		return number{kind: kindUnsigned, u: rv.Uint()}
	}
}

// asFloat returns n widened to float64.
func (n number) asFloat() float64 {
	switch n.kind {
	case kindSigned:
		return float64(n.i)
	case kindUnsigned:
		return float64(n.u)
	default:
		return n.f
	}
}

// numEqual compares two element values of possibly different types.
func numEqual(a, b number) bool {
	switch {
	case a.kind == kindFloat || b.kind == kindFloat:
		return a.asFloat() == b.asFloat()
	case a.kind == kindSigned && b.kind == kindSigned:
		return a.i == b.i
	case a.kind == kindUnsigned && b.kind == kindUnsigned:
		return a.u == b.u
	case a.kind == kindSigned: // b unsigned
		return a.i >= 0 && uint64(a.i) == b.u
	default: // a unsigned, b signed
		return b.i >= 0 && a.u == uint64(b.i)
	}
}
