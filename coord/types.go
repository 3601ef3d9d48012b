// SPDX-License-Identifier: MIT
// Package coord: element constraint and the two coordinate value types.

package coord

import "golang.org/x/exp/constraints"

// Number is the set of element types a coordinate may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Coord2 is a two-dimensional coordinate with components of type T.
// The zero value is the origin.
type Coord2[T Number] struct {
	X, Y T
}

// Coord3 is a three-dimensional coordinate with components of type T.
// The zero value is the origin.
type Coord3[T Number] struct {
	X, Y, Z T
}

// Coord2d is a 2D coordinate of float64 components.
type Coord2d = Coord2[float64]

// Coord2i is a 2D coordinate of int components.
type Coord2i = Coord2[int]

// New2 returns a Coord2 holding exactly x and y.
func New2[T Number](x, y T) Coord2[T] {
	return Coord2[T]{X: x, Y: y}
}

// New3 returns a Coord3 holding exactly x, y and z.
func New3[T Number](x, y, z T) Coord3[T] {
	return Coord3[T]{X: x, Y: y, Z: z}
}

// Zero2 returns the 2D origin for T.
func Zero2[T Number]() Coord2[T] {
	return Coord2[T]{}
}

// Zero3 returns the 3D origin for T.
func Zero3[T Number]() Coord3[T] {
	return Coord3[T]{}
}
