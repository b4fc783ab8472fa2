package randshapes

// State is the lifecycle state of a Display.
type State int

// see State
const (
	NoSurface State = iota
	SurfaceOpen
)

func (s State) String() string {
	if s == SurfaceOpen {
		return "SurfaceOpen"
	}
	return "NoSurface"
}

// Opener opens a new drawing surface, typically in its own window. The owner of the window must call Display.Closed with the surface when the user closes it.
type Opener func() Surface

// Display reuses a single drawing surface while its window stays open and opens a fresh one after the window was closed.
type Display struct {
	open    Opener
	surface Surface
}

// NewDisplay returns a display without an open surface.
func NewDisplay(open Opener) *Display {
	return &Display{open: open}
}

// State returns whether a surface is currently open.
func (d *Display) State() State {
	if d.surface == nil {
		return NoSurface
	}
	return SurfaceOpen
}

// Surface returns the open surface, opening one first when there is none.
func (d *Display) Surface() Surface {
	if d.surface == nil {
		d.surface = d.open()
	}
	return d.surface
}

// Closed is called when the window of s was closed. If s is the current surface, the next call to Surface opens a new one. Closing a surface that was already replaced has no effect.
func (d *Display) Closed(s Surface) {
	if d.surface == s {
		d.surface = nil
	}
}
