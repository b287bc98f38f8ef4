package fixed

import "golang.org/x/exp/constraints"

// Value is the constraint satisfied by all coordinate types of this package,
// both the fixed-point types and the plain integer wrappers.
type Value[T any] interface {
	constraints.Integer
	Mul(T) T
	Div(T) T
}

// A Point is an X, Y coordinate pair.
type Point[T Value[T]] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Value[T]](x, y T) Point[T] { return Point[T]{x, y} }

func (p Point[T]) Add(q Point[T]) Point[T] { return Point[T]{p.X + q.X, p.Y + q.Y} }
func (p Point[T]) Sub(q Point[T]) Point[T] { return Point[T]{p.X - q.X, p.Y - q.Y} }
func (p Point[T]) Mul(s T) Point[T]        { return Point[T]{p.X.Mul(s), p.Y.Mul(s)} }
func (p Point[T]) Div(s T) Point[T]        { return Point[T]{p.X.Div(s), p.Y.Div(s)} }

// In reports whether p is inside or on the boundary of r.
func (p Point[T]) In(r Rectangle[T]) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// A Rectangle is an axis-aligned rectangle with Min.X <= Max.X and
// Min.Y <= Max.Y. Unlike image.Rectangle both edges belong to the rectangle.
type Rectangle[T Value[T]] struct {
	Min, Max Point[T]
}

// Rect is shorthand for Rectangle[T]{Pt(x0, y0), Pt(x1, y1)}.
func Rect[T Value[T]](x0, y0, x1, y1 T) Rectangle[T] {
	return Rectangle[T]{Point[T]{x0, y0}, Point[T]{x1, y1}}
}

// Dx returns r's width.
func (r Rectangle[T]) Dx() T { return r.Max.X - r.Min.X }

// Dy returns r's height.
func (r Rectangle[T]) Dy() T { return r.Max.Y - r.Min.Y }

// Canon returns the canonical version of r, with Min and Max swapped where
// necessary.
func (r Rectangle[T]) Canon() Rectangle[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Empty reports whether r covers no area.
func (r Rectangle[T]) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// A Point3 is an X, Y, Z coordinate triple.
type Point3[T Value[T]] struct {
	X, Y, Z T
}

// Pt3 is shorthand for Point3[T]{x, y, z}.
func Pt3[T Value[T]](x, y, z T) Point3[T] { return Point3[T]{x, y, z} }

func (p Point3[T]) Add(q Point3[T]) Point3[T] { return Point3[T]{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point3[T]) Sub(q Point3[T]) Point3[T] { return Point3[T]{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point3[T]) Mul(s T) Point3[T] {
	return Point3[T]{p.X.Mul(s), p.Y.Mul(s), p.Z.Mul(s)}
}
func (p Point3[T]) Div(s T) Point3[T] {
	return Point3[T]{p.X.Div(s), p.Y.Div(s), p.Z.Div(s)}
}

// XY drops the Z coordinate.
func (p Point3[T]) XY() Point[T] { return Point[T]{p.X, p.Y} }
