// Package drivers defines the full device contract for vector-scan display
// backends and hosts its interchangeable implementations.
package drivers

import "github.com/vecscan/vecscan/render"

// TimeState reports whether the device's wall clock is usable, for the
// surrounding display logic that shows a time readout next to the model.
type TimeState int

const (
	TimeNotSet TimeState = iota
	TimeNeedsSync
	TimeSet
)

// A Device extends the renderer's plotting capability with the text and
// clock operations used by the display logic around the render pipeline.
// The core renderer itself calls only the render.Plotter subset.
type Device interface {
	render.Plotter

	// DrawString draws s with its baseline origin at device coordinates
	// x, y, scaled by the integer factor size.
	DrawString(s string, x, y, size int)

	// TimeStatus reports the state of the device's clock source.
	TimeStatus() TimeState
}
