package render

import (
	"github.com/vecscan/vecscan/debug"
	"github.com/vecscan/vecscan/fixed"
	"github.com/vecscan/vecscan/mesh"
)

// Setup rewrites m in place from mesh space into viewport space: an optional
// rotation by rot about the vertical axis through the model's center,
// followed by an orthographic, aspect-preserving fit into view. Z is scaled
// along but otherwise preserved for the draw order.
//
// After Setup every vertex of a non-degenerate mesh lies inside or on the
// boundary of view. A mesh with zero extent on one or both axes skips
// scaling on the degenerate axis and is centered instead. Setup of an empty
// mesh is a no-op.
func Setup(m mesh.Mesh, view fixed.Box2D, rot fixed.Angle) {
	if len(m) == 0 {
		return
	}
	if debug.Enabled {
		debug.Assert(view == view.Canon(), "inverted viewport")
	}

	if rot != 0 {
		rotate(m, rot)
	}

	min, max, _ := m.Bounds()
	w, h := max.X-min.X, max.Y-min.Y
	vw, vh := view.Dx(), view.Dy()

	// Uniform scale: the smaller of the two axis scales, so the whole
	// model fits without distorting its aspect ratio. A zero extent
	// contributes no constraint.
	var s fixed.Int16_16
	switch {
	case w == 0 && h == 0:
		s = fixed.One
	case w == 0:
		s = vh.Div(h)
	case h == 0:
		s = vw.Div(w)
	default:
		sx, sy := vw.Div(w), vh.Div(h)
		s = sx
		if sy < sx {
			s = sy
		}
	}

	// Center the scaled model in the viewport. Truncating Mul/Div round
	// towards zero, so the scaled extent never exceeds the viewport.
	off := fixed.Pt(
		view.Min.X+(vw-w.Mul(s))/2,
		view.Min.Y+(vh-h.Mul(s))/2,
	)
	for i := range m {
		for j, v := range m[i] {
			m[i][j] = fixed.P3{
				X: (v.X - min.X).Mul(s) + off.X,
				Y: (v.Y - min.Y).Mul(s) + off.Y,
				Z: (v.Z - min.Z).Mul(s),
			}
		}
	}
}

// rotate turns m by a about the vertical axis through the center of its
// bounding box.
func rotate(m mesh.Mesh, a fixed.Angle) {
	min, max, _ := m.Bounds()
	c := fixed.P3{
		X: min.X + (max.X-min.X)/2,
		Y: min.Y + (max.Y-min.Y)/2,
		Z: min.Z + (max.Z-min.Z)/2,
	}
	sin, cos := fixed.Sin(a), fixed.Cos(a)
	for i := range m {
		for j, v := range m[i] {
			x, z := v.X-c.X, v.Z-c.Z
			m[i][j].X = x.Mul(cos) + z.Mul(sin) + c.X
			m[i][j].Z = z.Mul(cos) - x.Mul(sin) + c.Z
		}
	}
}
