// SPDX-License-Identifier: MIT
// Package coord: decoding of the canonical text form.
//
// Accepted input is what String produces, optionally with spaces around the
// whole literal and around each component: " coord2( 1 , 2.5 ) ".
// Component parsing follows strconv for the element type, so integer
// coordinates reject "1.5" and float coordinates accept "Inf" and "NaN".

package coord

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
)

// Parse2 decodes a "coord2(x,y)" literal into a Coord2[T].
func Parse2[T Number](s string) (Coord2[T], error) {
	var c Coord2[T]
	parts, err := splitLiteral(s, prefix2, 2)
	if err != nil {
		return c, coordErrorf("Parse2", err)
	}
	if c.X, err = parseNumber[T](parts[0]); err != nil {
		return Coord2[T]{}, coordErrorf("Parse2", err)
	}
	if c.Y, err = parseNumber[T](parts[1]); err != nil {
		return Coord2[T]{}, coordErrorf("Parse2", err)
	}
	return c, nil
}

// Parse3 decodes a "coord3(x,y,z)" literal into a Coord3[T].
func Parse3[T Number](s string) (Coord3[T], error) {
	var c Coord3[T]
	parts, err := splitLiteral(s, prefix3, 3)
	if err != nil {
		return c, coordErrorf("Parse3", err)
	}
	dst := [3]*T{&c.X, &c.Y, &c.Z}
	for i, p := range parts {
		if *dst[i], err = parseNumber[T](p); err != nil {
			return Coord3[T]{}, coordErrorf("Parse3", err)
		}
	}
	return c, nil
}

// ParseScalar parses a single component value as a T, with the same rules
// Parse2 and Parse3 apply to each component.
func ParseScalar[T Number](s string) (T, error) {
	v, err := parseNumber[T](strings.TrimSpace(s))
	if err != nil {
		return v, coordErrorf("ParseScalar", err)
	}
	return v, nil
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (c Coord2[T]) MarshalText() ([]byte, error) {
	return c.appendText(nil, canonical), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error c is left
// unchanged.
func (c *Coord2[T]) UnmarshalText(text []byte) error {
	v, err := Parse2[T](string(text))
	if err != nil {
		return err
	}
	c.Assign(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (c Coord3[T]) MarshalText() ([]byte, error) {
	return c.appendText(nil, canonical), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error c is left
// unchanged.
func (c *Coord3[T]) UnmarshalText(text []byte) error {
	v, err := Parse3[T](string(text))
	if err != nil {
		return err
	}
	c.Assign(v)
	return nil
}

// splitLiteral checks the "prefix ... )" frame of s and returns its n
// trimmed components.
func splitLiteral(s, prefix string, n int) ([]string, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, ErrSyntax
	}
	head := s[:open+1]
	if head != prefix {
		if head == prefix2 || head == prefix3 {
			return nil, ErrDimension
		}
		return nil, ErrSyntax
	}

	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != n {
		return nil, ErrSyntax
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil, ErrSyntax
		}
	}
	return parts, nil
}

// parseNumber parses s as a T, using T's kind and bit size.
func parseNumber[T Number](s string) (T, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	bits := int(rt.Size()) * 8

	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return zero, numError(err)
		}
		return T(f), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return zero, numError(err)
		}
		return T(i), nil
	default:
		u, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return zero, numError(err)
		}
		return T(u), nil
	}
}

// numError translates a strconv failure into the package sentinels.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		if errors.Is(ne.Err, strconv.ErrRange) {
			return coordErrorf(strconv.Quote(ne.Num), ErrRange)
		}
		return coordErrorf(strconv.Quote(ne.Num), ErrSyntax)
	}
	return ErrSyntax
}
