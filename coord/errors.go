// SPDX-License-Identifier: MIT
// Package coord: sentinel error set.
// This file defines ONLY the package-level sentinels. Callers match them
// with errors.Is; the wrapped text is for humans.
//
// Scope:
//   - Only text decoding (Parse2, Parse3, ParseScalar, UnmarshalText) can fail.
//   - Construction, conversion, assignment and arithmetic never return errors.
//     Overflow, precision loss and division by zero behave exactly as they do
//     for the element type: floats give ±Inf/NaN, integers wrap, integer
//     division by zero panics with the runtime error. Numeric safety is the
//     caller's responsibility.

package coord

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every sentinel message is prefixed with "coord: ". Call sites wrap with
// coordErrorf(tag, ErrX), where tag is the exported entry point ("Parse2")
// or the offending component text ("\"1e400\""), giving messages such as
//
//	Parse2: "1e400": coord: value out of range
//
// ERROR PRIORITY (per literal, first hit wins):
// frame/name -> dimension -> component count -> component syntax -> range.

var (
	// ErrSyntax indicates text that is not a well-formed coordinate literal.
	ErrSyntax = errors.New("coord: invalid syntax")

	// ErrDimension indicates a literal of the other dimension,
	// e.g. "coord3(1,2,3)" decoded into a Coord2.
	ErrDimension = errors.New("coord: dimension mismatch")

	// ErrRange indicates a component that does not fit the element type.
	ErrRange = errors.New("coord: value out of range")
)

// coordErrorf wraps an underlying error with the given tag.
func coordErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
