// Package mesh provides the triangle mesh store consumed by the render
// pipeline, together with a few compiled-in models.
package mesh

import "github.com/vecscan/vecscan/fixed"

// A Triangle is three vertices in counter-clockwise winding order.
type Triangle [3]fixed.P3

// Centroid returns the arithmetic mean of the triangle's vertices.
func (t Triangle) Centroid() fixed.P3 {
	sum := t[0].Add(t[1]).Add(t[2])
	return fixed.P3{
		X: fixed.Int16_16(int64(sum.X) / 3),
		Y: fixed.Int16_16(int64(sum.Y) / 3),
		Z: fixed.Int16_16(int64(sum.Z) / 3),
	}
}

// A Mesh is an ordered sequence of triangles. The order carries no meaning
// of its own; the renderer imposes its own draw order.
type Mesh []Triangle

// Bounds returns the axis-aligned extent of all vertices. ok is false for
// the empty mesh, in which case min and max are zero.
func (m Mesh) Bounds() (min, max fixed.P3, ok bool) {
	if len(m) == 0 {
		return
	}
	min = m[0][0]
	max = m[0][0]
	for _, t := range m {
		for _, v := range t {
			if v.X < min.X {
				min.X = v.X
			}
			if v.X > max.X {
				max.X = v.X
			}
			if v.Y < min.Y {
				min.Y = v.Y
			}
			if v.Y > max.Y {
				max.Y = v.Y
			}
			if v.Z < min.Z {
				min.Z = v.Z
			}
			if v.Z > max.Z {
				max.Z = v.Z
			}
		}
	}
	return min, max, true
}

// Copy returns a deep copy of m.
func (m Mesh) Copy() Mesh {
	return append(Mesh(nil), m...)
}

// CopyInto copies m into dst, reusing dst's backing array if it is large
// enough, and returns the copy. Use it to maintain a per-frame scratch mesh
// without allocating on every frame.
func (m Mesh) CopyInto(dst Mesh) Mesh {
	dst = append(dst[:0], m...)
	return dst
}
