package randshapes

import (
	"fmt"
	"math/rand/v2"

	"github.com/tdewolff/canvas"
)

// Bounds is the rectangular region in which shape anchors are placed. XMin < XMax and YMin < YMax are not required, inverted or empty bounds give degenerate placements.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Contains returns true if p lies in [XMin,XMax) × [YMin,YMax). An empty range on an axis contains only its single coordinate.
func (b Bounds) Contains(p canvas.Point) bool {
	return inRange(p.X, b.XMin, b.XMax) && inRange(p.Y, b.YMin, b.YMax)
}

// W returns the width of the bounds.
func (b Bounds) W() float64 {
	return b.XMax - b.XMin
}

// H returns the height of the bounds.
func (b Bounds) H() float64 {
	return b.YMax - b.YMin
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g,%g)×[%g,%g)", b.XMin, b.XMax, b.YMin, b.YMax)
}

// sample returns a uniformly random point in the bounds.
func (b Bounds) sample(rng *rand.Rand) canvas.Point {
	x := rng.Float64()*b.W() + b.XMin
	y := rng.Float64()*b.H() + b.YMin
	return canvas.Point{X: x, Y: y}
}

func inRange(v, lo, hi float64) bool {
	if lo == hi {
		return v == lo
	} else if hi < lo {
		return hi < v && v <= lo
	}
	return lo <= v && v < hi
}
