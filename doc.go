// Package lvcoord is a small toolkit for fixed-dimension coordinates: 2D and
// 3D points and offsets over any integer or floating-point element type.
//
// 🚀 What is in lvcoord?
//
//	coord/          — Coord2 / Coord3 value types, conversion, 2D arithmetic,
//	                  canonical "coord2(x,y)" text output and parsing
//	cmd/coordcalc/  — command-line calculator built on coord: format,
//	                  eval, convert and YAML batch runs
//
// ✨ Why lvcoord?
//
//   - Plain values – no pointers, no locks, copy freely between goroutines
//   - Explicit conversions – Convert2[int](p) instead of silent narrowing
//   - Stable text form – 16 significant digits, round-trips through
//     fmt, io.Writer, YAML and JSON
//
// Quick example:
//
//	p := coord.New2(1.5, 2.0)
//	p.AddAssign(coord.New2(0.5, 1.0)).MulAssign(2)
//	fmt.Println(p) // coord2(4,6)
//
//	go get github.com/katalvlaran/lvcoord/coord
package lvcoord
