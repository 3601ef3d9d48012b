// SPDX-License-Identifier: MIT
// Package coord: canonical text output.
//
// Purpose:
//   - Render Coord2 as "coord2(x,y)" and Coord3 as "coord3(x,y,z)", with no
//     whitespace anywhere in the text.
//   - Offer the same text through String, io.WriterTo, fmt.Formatter and
//     encoding.TextMarshaler (see parse.go for the reverse direction).
//
// Numeric rendering:
//   - Floats: 16 significant digits in %g style (C's "%.16g"): trailing zeros
//     trimmed, exponent form below 1e-4 and at or above 1e16. float32 is
//     widened to float64 first, so float32(0.1) prints 0.1000000014901161.
//   - Integers: base 10, never affected by float verbs.
//   - Specials keep Go's spellings: +Inf, -Inf, NaN, -0.
//
// Buffer discipline:
//   - Every writer builds the full text in a local []byte first and hands it
//     to the destination in exactly one Write. Nothing is written on a
//     partial result.
//   - Caller options (fmt flags, width) are read, applied to that local
//     buffer and never stored, so they cannot affect later output.
//   - Precision requested by the caller is ignored: components always use
//     16 digits, so the text form stays stable across call sites.

package coord

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// precision is the number of significant digits used for float components.
const precision = 16

const (
	prefix2 = "coord2("
	prefix3 = "coord3("
)

// numFormat selects how a single component is rendered.
type numFormat struct {
	verb byte // strconv float format: 'g', 'G', 'e', 'E' or 'f'
	plus bool // force a sign on non-negative signed values
}

var canonical = numFormat{verb: 'g'}

// appendNumber appends v to dst. Floats use verb at 16 significant digits
// (float32 is widened first), integers are always base 10.
func appendNumber[T Number](dst []byte, v T, nf numFormat) []byte {
	n := toNumber(v)
	switch n.kind {
	case kindFloat:
		// strconv already signs +Inf.
		if nf.plus && !math.Signbit(n.f) && !math.IsNaN(n.f) && !math.IsInf(n.f, 1) {
			dst = append(dst, '+')
		}
		return strconv.AppendFloat(dst, n.f, nf.verb, precision, 64)
	case kindSigned:
		if nf.plus && n.i >= 0 {
			dst = append(dst, '+')
		}
		return strconv.AppendInt(dst, n.i, 10)
	default:
		return strconv.AppendUint(dst, n.u, 10)
	}
}

func (c Coord2[T]) appendText(dst []byte, nf numFormat) []byte {
	dst = append(dst, prefix2...)
	dst = appendNumber(dst, c.X, nf)
	dst = append(dst, ',')
	dst = appendNumber(dst, c.Y, nf)
	return append(dst, ')')
}

func (c Coord3[T]) appendText(dst []byte, nf numFormat) []byte {
	dst = append(dst, prefix3...)
	dst = appendNumber(dst, c.X, nf)
	dst = append(dst, ',')
	dst = appendNumber(dst, c.Y, nf)
	dst = append(dst, ',')
	dst = appendNumber(dst, c.Z, nf)
	return append(dst, ')')
}

// String returns the canonical form "coord2(x,y)".
func (c Coord2[T]) String() string {
	return string(c.appendText(nil, canonical))
}

// String returns the canonical form "coord3(x,y,z)".
func (c Coord3[T]) String() string {
	return string(c.appendText(nil, canonical))
}

// WriteTo writes the canonical form of c to w in a single Write.
func (c Coord2[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.appendText(nil, canonical))
	return int64(n), err
}

// WriteTo writes the canonical form of c to w in a single Write.
func (c Coord3[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.appendText(nil, canonical))
	return int64(n), err
}

// Format implements fmt.Formatter.
//
//   - %v, %s          canonical form
//   - %#v             also the canonical form, not Go syntax
//   - %e %E %f %F %g %G  float components in that style, 16 digits
//   - flag '+'        sign on non-negative components
//   - width, flag '-' pad the whole text
//
// The precision of the verb is ignored; components always use 16 digits.
func (c Coord2[T]) Format(f fmt.State, verb rune) {
	nf, ok := stateFormat(f, verb)
	if !ok {
		badVerb(f, verb, c.appendText(nil, canonical))
		return
	}
	writePadded(f, c.appendText(nil, nf))
}

// Format implements fmt.Formatter. See Coord2.Format.
func (c Coord3[T]) Format(f fmt.State, verb rune) {
	nf, ok := stateFormat(f, verb)
	if !ok {
		badVerb(f, verb, c.appendText(nil, canonical))
		return
	}
	writePadded(f, c.appendText(nil, nf))
}

// stateFormat maps a fmt verb and its flags to a numFormat.
func stateFormat(f fmt.State, verb rune) (numFormat, bool) {
	nf := numFormat{plus: f.Flag('+')}
	switch verb {
	case 'v', 's', 'g':
		nf.verb = 'g'
	case 'G':
		nf.verb = 'G'
	case 'e':
		nf.verb = 'e'
	case 'E':
		nf.verb = 'E'
	case 'f', 'F':
		nf.verb = 'f'
	default:
		return numFormat{}, false
	}
	return nf, true
}

// writePadded writes text to f, padded with spaces up to f's width.
func writePadded(f fmt.State, text []byte) {
	width, ok := f.Width()
	if !ok || width <= len(text) {
		_, _ = f.Write(text)
		return
	}
	buf := make([]byte, 0, width)
	pad := width - len(text)
	if f.Flag('-') {
		buf = append(buf, text...)
		buf = appendSpaces(buf, pad)
	} else {
		buf = appendSpaces(buf, pad)
		buf = append(buf, text...)
	}
	_, _ = f.Write(buf)
}

func appendSpaces(dst []byte, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, ' ')
	}
	return dst
}

// badVerb mirrors fmt's "%!verb(value)" error text.
func badVerb(f fmt.State, verb rune, text []byte) {
	buf := make([]byte, 0, len(text)+8)
	buf = append(buf, '%', '!')
	buf = append(buf, string(verb)...)
	buf = append(buf, '(')
	buf = append(buf, text...)
	buf = append(buf, ')')
	_, _ = f.Write(buf)
}
