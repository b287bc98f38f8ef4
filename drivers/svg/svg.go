// Package svg implements a Device that records its strokes as an SVG
// document. It is the host-side stand-in for real deflection hardware and
// doubles as a visual verification backend: every MoveTo/LineTo pair becomes
// part of a single path element, so the output mirrors exactly what a pen
// would travel.
package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/vecscan/vecscan/drivers"
)

const fontHeight = 12

type text struct {
	s          string
	x, y, size int
}

// A Device writes all received strokes to an SVG document. It must be
// finished with Close, which reports the first write error encountered.
type Device struct {
	w      *bufio.Writer
	texts  []text
	inPath bool
	err    error
}

// New returns a Device for a width x height drawing area and writes the
// document prolog, including a border path around the device bounds.
func New(w io.Writer, width, height int) *Device {
	d := &Device{w: bufio.NewWriter(w)}
	d.printf("<svg width='%d' height='%d' xmlns='http://www.w3.org/2000/svg' version='1.1'>\n", width, height)
	d.printf(" <!-- border -->\n")
	d.printf(" <path fill='none' stroke='black' d='M 0 0 L 0 %d L %d %d L %d 0 L 0 0'/>\n",
		height, width, height, width)
	return d
}

func (d *Device) MoveTo(x, y int) {
	d.beginPath()
	d.printf(" M %d %d", x, y)
}

func (d *Device) LineTo(x, y int) {
	d.beginPath()
	d.printf(" L %d %d", x, y)
}

// DrawString records s for emission at Close. Text elements may not nest in
// the stroke path, so they are deferred until the path is finished.
func (d *Device) DrawString(s string, x, y, size int) {
	d.texts = append(d.texts, text{s, x, y, size})
}

// TimeStatus always reports a set clock, the host's.
func (d *Device) TimeStatus() drivers.TimeState {
	return drivers.TimeSet
}

// Close finishes the document and flushes it to the underlying writer. It
// returns the first error encountered while writing.
func (d *Device) Close() error {
	d.endPath()
	for _, t := range d.texts {
		d.printf(" <text x='%d' y='%d' font-size='%d'>", t.x, t.y, t.size*fontHeight)
		if d.err == nil {
			d.err = xml.EscapeText(d.w, []byte(t.s))
		}
		d.printf("</text>\n")
	}
	d.printf("</svg>\n")
	if err := d.w.Flush(); d.err == nil {
		d.err = err
	}
	return d.err
}

func (d *Device) beginPath() {
	if d.inPath {
		return
	}
	d.printf(" <path fill='none' stroke='black' d='")
	d.inPath = true
}

func (d *Device) endPath() {
	if !d.inPath {
		return
	}
	d.printf("'/>\n")
	d.inPath = false
}

func (d *Device) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}
