// Package coord provides fixed-dimension coordinate values for 2D and 3D
// space, generic over their numeric element type.
//
// 🚀 What is a coordinate here?
//
//	A plain value: two (Coord2) or three (Coord3) components of one numeric
//	type T. It is copied by assignment, compared by value and never shares
//	state. Points and offsets are both represented by the same type.
//
// ✨ Key features:
//   - generic element type: any integer or floating-point T
//   - explicit converting construction between element types (Convert2/Convert3)
//   - copy-and-swap assignment (Assign, AssignFrom2, AssignFrom3)
//   - 2D compound arithmetic (AddAssign, MulAssign, …) and the derived
//     non-mutating forms (Add, Mul, …)
//   - canonical text form "coord2(x,y)" / "coord3(x,y,z)" with 16
//     significant digits, usable with fmt, io.Writer and encoding.TextMarshaler
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvcoord/coord"
//
//	p := coord.New2(1.5, 2.0)
//	p.AddAssign(coord.New2(0.5, 1.0)).MulAssign(2)
//	fmt.Println(p)                        // coord2(4,6)
//	fmt.Println(coord.Convert2[int](p))   // coord2(4,6)
//
// Numeric safety:
//
//	No operation validates its input. Overflow, precision loss on
//	conversion and division by zero behave exactly as they do for T itself:
//	floats produce ±Inf/NaN, integers wrap or panic on division by zero.
//
// Only Coord2 carries arithmetic and the Equal method. Coord3 supports
// construction, conversion, assignment and text output.
package coord
