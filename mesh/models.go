package mesh

import "github.com/vecscan/vecscan/fixed"

// Compiled-in sample models, all centered on the origin with integer
// coordinates. Model constructors return a fresh Mesh so callers may hand it
// to the renderer's destructive transform without affecting later calls.

func pt(x, y, z int) fixed.P3 {
	return fixed.Pt3(fixed.Int16_16U(x), fixed.Int16_16U(y), fixed.Int16_16U(z))
}

// Cube returns a unit-radius cube as 12 triangles.
func Cube() Mesh {
	v := [8]fixed.P3{
		pt(-1, -1, -1), pt(1, -1, -1), pt(1, 1, -1), pt(-1, 1, -1),
		pt(-1, -1, 1), pt(1, -1, 1), pt(1, 1, 1), pt(-1, 1, 1),
	}
	return Mesh{
		{v[4], v[5], v[6]}, {v[4], v[6], v[7]}, // front
		{v[1], v[0], v[3]}, {v[1], v[3], v[2]}, // back
		{v[0], v[4], v[7]}, {v[0], v[7], v[3]}, // left
		{v[5], v[1], v[2]}, {v[5], v[2], v[6]}, // right
		{v[7], v[6], v[2]}, {v[7], v[2], v[3]}, // top
		{v[0], v[1], v[5]}, {v[0], v[5], v[4]}, // bottom
	}
}

// Tetra returns a regular tetrahedron inscribed in the unit-radius cube.
func Tetra() Mesh {
	v := [4]fixed.P3{
		pt(1, 1, 1), pt(1, -1, -1), pt(-1, 1, -1), pt(-1, -1, 1),
	}
	return Mesh{
		{v[0], v[1], v[2]},
		{v[0], v[3], v[1]},
		{v[0], v[2], v[3]},
		{v[1], v[3], v[2]},
	}
}

// Octa returns a regular octahedron with unit-distance apexes.
func Octa() Mesh {
	px, nx := pt(1, 0, 0), pt(-1, 0, 0)
	py, ny := pt(0, 1, 0), pt(0, -1, 0)
	pz, nz := pt(0, 0, 1), pt(0, 0, -1)
	return Mesh{
		{px, py, pz}, {py, nx, pz}, {nx, ny, pz}, {ny, px, pz},
		{py, px, nz}, {nx, py, nz}, {ny, nx, nz}, {px, ny, nz},
	}
}
