// Package fb implements a rasterizing Device backed by a host image, for
// previewing stroke output without vector hardware. It additionally
// implements the display driver interface of github.com/embeddedgo/display,
// so it can sit under a pix.Display like a real screen.
package fb

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	xfixed "golang.org/x/image/math/fixed"

	"github.com/vecscan/vecscan/drivers"
)

// A Framebuffer rasterizes pen strokes into an RGBA image.
type Framebuffer struct {
	img  *image.RGBA
	fill image.Uniform // pix driver fill color
	pen  color.Color   // stroke color
	x, y int
}

// New returns a Framebuffer covering r, with a white pen on a transparent
// background.
func New(r image.Rectangle) *Framebuffer {
	fb := &Framebuffer{img: image.NewRGBA(r), pen: color.White}
	fb.fill.C = color.White
	return fb
}

// RGBA exposes the rasterized image.
func (fb *Framebuffer) RGBA() *image.RGBA { return fb.img }

func (fb *Framebuffer) Bounds() image.Rectangle { return fb.img.Bounds() }

// SetPen sets the stroke color used by LineTo and DrawString.
func (fb *Framebuffer) SetPen(c color.Color) { fb.pen = c }

func (fb *Framebuffer) MoveTo(x, y int) {
	fb.x, fb.y = x, y
}

// LineTo draws a Bresenham line from the current pen position.
func (fb *Framebuffer) LineTo(x, y int) {
	x0, y0 := fb.x, fb.y
	dx, sx := abs(x-x0), 1
	if x0 > x {
		sx = -1
	}
	dy, sy := -abs(y-y0), 1
	if y0 > y {
		sy = -1
	}
	e := dx + dy
	for {
		fb.img.Set(x0, y0, fb.pen)
		if x0 == x && y0 == y {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
	fb.x, fb.y = x, y
}

// DrawString draws s with its baseline origin at x, y. The fixed 7x13 face
// has no scalable sizes; size is accepted for the Device contract and only
// sizes below one are rejected.
func (fb *Framebuffer) DrawString(s string, x, y, size int) {
	if size < 1 {
		return
	}
	d := font.Drawer{
		Dst:  fb.img,
		Src:  image.NewUniform(fb.pen),
		Face: basicfont.Face7x13,
		Dot:  xfixed.P(x, y),
	}
	d.DrawString(s)
}

// TimeStatus always reports a set clock, the host's.
func (fb *Framebuffer) TimeStatus() drivers.TimeState {
	return drivers.TimeSet
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var _ drivers.Device = (*Framebuffer)(nil)
