// Package fixed provides the fixed-point arithmetic and geometry types used
// by the render pipeline. All arithmetic wraps in two's complement; keeping
// intermediate values in range is the caller's responsibility.
package fixed

//go:generate go run mkfixed.go Int16_16 int32
type Int16_16 int32

//go:generate go run mkfixed.go Int24_8 int32
type Int24_8 int32

// One is the Q16.16 representation of 1.
const One Int16_16 = 1 << 16

// Aliases for the Q16.16 working types of the renderer.
type P2 = Point[Int16_16]
type P3 = Point3[Int16_16]
type Box2D = Rectangle[Int16_16]
