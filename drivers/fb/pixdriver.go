package fb

import (
	"image"
	"image/color"
	"image/draw"
)

// The methods below implement the pix display driver interface, so a
// Framebuffer can be wrapped in a pix.Display and composed with its areas
// and text writers.

func (fb *Framebuffer) Draw(r image.Rectangle, src image.Image, sp image.Point,
	mask image.Image, mp image.Point, op draw.Op) {
	draw.DrawMask(fb.img, r, src, sp, mask, mp, op)
}

func (fb *Framebuffer) Fill(r image.Rectangle) {
	fb.Draw(r, &fb.fill, image.Point{}, nil, image.Point{}, draw.Over)
}

func (fb *Framebuffer) SetColor(c color.Color) {
	fb.fill.C = c
}

func (fb *Framebuffer) SetDir(dir int) image.Rectangle {
	return fb.img.Bounds()
}

func (fb *Framebuffer) Flush() {}

func (fb *Framebuffer) Err(clear bool) error {
	return nil
}
