package randshapes

import (
	"image/color"

	"github.com/tdewolff/canvas"
)

// Surface is a 2D drawing destination. Coordinates have their origin at the top-left with y pointing down.
type Surface interface {
	// Clear removes everything drawn so far.
	Clear()

	// Line strokes a line segment from (x0,y0) to (x1,y1).
	Line(x0, y0, x1, y1 float64, col color.Color)

	// FillOval fills the ellipse inscribed in the rectangle with top-left corner (x,y), width w and height h.
	FillOval(x, y, w, h float64, col color.Color)

	// FillRect fills the rectangle with top-left corner (x,y), width w and height h.
	FillRect(x, y, w, h float64, col color.Color)

	// FillPolygon fills the polygon through pts.
	FillPolygon(pts []canvas.Point, col color.Color)

	// FillPath fills the path that moves to pts[0] and has line segments through the remaining points. The path is closed implicitly.
	FillPath(pts []canvas.Point, col color.Color)
}

// Flusher is implemented by surfaces that buffer drawing operations and need to present them after a render.
type Flusher interface {
	Flush()
}
