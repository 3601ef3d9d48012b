// SPDX-License-Identifier: MIT
// Package coord: Coord2 conversion, assignment, equality and arithmetic.
//
// Design:
//   - Compound operators (…Assign) mutate through a pointer receiver and return
//     that pointer so calls chain: p.AddAssign(q).MulAssign(2).
//   - Binary operators use a value receiver; the receiver is already a copy,
//     so each one is its compound form applied to that copy.
//   - No operation guards against overflow or division by zero.

package coord

// Convert2 builds a Coord2[T] from a Coord2[U], converting each component
// with T(u). Float-to-integer conversion truncates toward zero; narrowing
// integer conversion wraps.
func Convert2[T, U Number](c Coord2[U]) Coord2[T] {
	return Coord2[T]{X: T(c.X), Y: T(c.Y)}
}

// Assign replaces c with src and returns c.
func (c *Coord2[T]) Assign(src Coord2[T]) *Coord2[T] {
	tmp := src
	c.swap(&tmp)
	return c
}

// AssignFrom2 replaces dst with the component-wise conversion of src and
// returns dst. The converted value is complete before dst is touched.
func AssignFrom2[T, U Number](dst *Coord2[T], src Coord2[U]) *Coord2[T] {
	tmp := Convert2[T](src)
	dst.swap(&tmp)
	return dst
}

func (c *Coord2[T]) swap(o *Coord2[T]) {
	c.X, o.X = o.X, c.X
	c.Y, o.Y = o.Y, c.Y
}

// Equal reports whether every component of c equals the matching one of o.
func (c Coord2[T]) Equal(o Coord2[T]) bool {
	return c.X == o.X && c.Y == o.Y
}

// Equal2 compares coordinates of possibly different element types without
// truncating either side: components are compared as float64 when either
// type is a float, and as exact integers otherwise (a negative value never
// equals an unsigned one). Equal2(a, b) == Equal2(b, a) always holds.
func Equal2[T, U Number](a Coord2[T], b Coord2[U]) bool {
	return numEqual(toNumber(a.X), toNumber(b.X)) &&
		numEqual(toNumber(a.Y), toNumber(b.Y))
}

// AddAssign adds o to c component-wise.
func (c *Coord2[T]) AddAssign(o Coord2[T]) *Coord2[T] {
	c.X += o.X
	c.Y += o.Y
	return c
}

// AddScalarAssign adds s to both components of c.
func (c *Coord2[T]) AddScalarAssign(s T) *Coord2[T] {
	c.X += s
	c.Y += s
	return c
}

// SubAssign subtracts o from c component-wise.
func (c *Coord2[T]) SubAssign(o Coord2[T]) *Coord2[T] {
	c.X -= o.X
	c.Y -= o.Y
	return c
}

// SubScalarAssign subtracts s from both components of c.
func (c *Coord2[T]) SubScalarAssign(s T) *Coord2[T] {
	c.X -= s
	c.Y -= s
	return c
}

// MulAssign multiplies both components of c by s.
func (c *Coord2[T]) MulAssign(s T) *Coord2[T] {
	c.X *= s
	c.Y *= s
	return c
}

// DivAssign divides both components of c by s.
// For integer T a zero s panics with the runtime divide error.
func (c *Coord2[T]) DivAssign(s T) *Coord2[T] {
	c.X /= s
	c.Y /= s
	return c
}

// Add returns c + o.
func (c Coord2[T]) Add(o Coord2[T]) Coord2[T] {
	return *c.AddAssign(o)
}

// AddScalar returns c with s added to both components.
func (c Coord2[T]) AddScalar(s T) Coord2[T] {
	return *c.AddScalarAssign(s)
}

// Sub returns c - o.
func (c Coord2[T]) Sub(o Coord2[T]) Coord2[T] {
	return *c.SubAssign(o)
}

// SubScalar returns c with s subtracted from both components.
func (c Coord2[T]) SubScalar(s T) Coord2[T] {
	return *c.SubScalarAssign(s)
}

// Mul returns c scaled by s.
func (c Coord2[T]) Mul(s T) Coord2[T] {
	return *c.MulAssign(s)
}

// Div returns c divided by s.
func (c Coord2[T]) Div(s T) Coord2[T] {
	return *c.DivAssign(s)
}
