// SPDX-License-Identifier: MIT

package coord

// Convert3 builds a Coord3[T] from a Coord3[U], converting each component
// with T(u).
func Convert3[T, U Number](c Coord3[U]) Coord3[T] {
	return Coord3[T]{X: T(c.X), Y: T(c.Y), Z: T(c.Z)}
}

// Assign replaces c with src and returns c.
func (c *Coord3[T]) Assign(src Coord3[T]) *Coord3[T] {
	tmp := src
	c.swap(&tmp)
	return c
}

// AssignFrom3 replaces dst with the component-wise conversion of src and
// returns dst.
func AssignFrom3[T, U Number](dst *Coord3[T], src Coord3[U]) *Coord3[T] {
	tmp := Convert3[T](src)
	dst.swap(&tmp)
	return dst
}

func (c *Coord3[T]) swap(o *Coord3[T]) {
	c.X, o.X = o.X, c.X
	c.Y, o.Y = o.Y, c.Y
	c.Z, o.Z = o.Z, c.Z
}
