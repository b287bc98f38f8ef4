// Package render implements the stroke render pipeline for vector-scan
// displays. It fits a 3D triangle mesh into a 2D viewport and emits the
// triangle outlines as an ordered sequence of pen strokes, using fixed-point
// arithmetic throughout.
//
// The pipeline is two explicit steps: [Setup] rewrites a mesh from mesh
// space into viewport space, [Draw] turns the viewport-space mesh into
// MoveTo/LineTo calls on a [Plotter]. [Context] bundles both with an
// immutable source mesh and a reused per-frame scratch buffer.
package render

import (
	"github.com/vecscan/vecscan/fixed"
	"github.com/vecscan/vecscan/mesh"
)

// A Plotter is the minimal drawing capability required by the renderer.
// Both the real deflection hardware and host-side test backends implement
// it. Calls are fire-and-forget; a Plotter has no error channel.
type Plotter interface {
	// MoveTo lifts the pen and repositions it to device coordinates x, y.
	MoveTo(x, y int)
	// LineTo draws a straight segment from the current position to x, y
	// and makes it the new current position.
	LineTo(x, y int)
}

// A Context owns everything needed to redraw a model once per tick: the
// mesh-space source, the viewport and the output device. The source mesh is
// copied in, so the destructive per-frame transform never touches the
// caller's data.
type Context struct {
	src   mesh.Mesh
	frame mesh.Mesh
	view  fixed.Box2D
	dev   Plotter
}

// NewContext returns a Context rendering src into view on dev. view must be
// canonical (Min <= Max per axis).
func NewContext(src mesh.Mesh, view fixed.Box2D, dev Plotter) *Context {
	return &Context{
		src:   src.Copy(),
		frame: make(mesh.Mesh, 0, len(src)),
		view:  view,
		dev:   dev,
	}
}

// Frame renders one frame with the model rotated by rot about its vertical
// axis. Repeated calls with equal rot emit identical stroke sequences; no
// allocations happen after the first call.
func (c *Context) Frame(rot fixed.Angle) {
	c.frame = c.src.CopyInto(c.frame)
	Setup(c.frame, c.view, rot)
	Draw(c.frame, c.view, c.dev)
}
