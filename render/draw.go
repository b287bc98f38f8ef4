package render

import (
	"cmp"
	"slices"

	"github.com/vecscan/vecscan/fixed"
	"github.com/vecscan/vecscan/mesh"
)

// Draw emits the outline of every triangle in m as pen strokes on p: one
// MoveTo to the first vertex, then three LineTo closing the triangle.
//
// Draw order is deterministic: triangles are sorted back to front by
// centroid depth (stable, so equal depths keep their input order) to
// approximate occlusion on a persistence display. m is reordered in place by
// the sort; it is expected to be the per-frame scratch mesh, not a model.
// Consecutive triangles sharing the pen position elide the intervening
// MoveTo to reduce pen travel.
//
// m must already be in viewport space. Vertices are clamped into view
// before conversion to device coordinates, so boundary coordinates from the
// transform's rounding never leave the device range.
func Draw(m mesh.Mesh, view fixed.Box2D, p Plotter) {
	if len(m) == 0 {
		return
	}

	// Vertices sit in front of the viewer at increasing Z, so back to
	// front means ascending centroid depth.
	slices.SortStableFunc(m, func(a, b mesh.Triangle) int {
		return cmp.Compare(a.Centroid().Z, b.Centroid().Z)
	})

	out := pen{dev: p, x: -1 << 31, y: -1 << 31}
	for _, t := range m {
		out.moveTo(devPt(t[0], view))
		out.lineTo(devPt(t[1], view))
		out.lineTo(devPt(t[2], view))
		out.lineTo(devPt(t[0], view))
	}
}

// devPt clamps v into view and converts it to integer device coordinates.
func devPt(v fixed.P3, view fixed.Box2D) (x, y int) {
	return clamp(v.X, view.Min.X, view.Max.X).Round(),
		clamp(v.Y, view.Min.Y, view.Max.Y).Round()
}

func clamp(x, lo, hi fixed.Int16_16) fixed.Int16_16 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// pen tracks the current device position to skip redundant repositioning.
type pen struct {
	dev  Plotter
	x, y int
}

func (p *pen) moveTo(x, y int) {
	if x == p.x && y == p.y {
		return
	}
	p.dev.MoveTo(x, y)
	p.x, p.y = x, y
}

func (p *pen) lineTo(x, y int) {
	p.dev.LineTo(x, y)
	p.x, p.y = x, y
}
