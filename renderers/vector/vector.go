package vector

import (
	"image"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"
	"github.com/tdewolff/randshapes"
)

// Vector is a drawing surface that records to a canvas.Canvas with the origin at the top-left and y pointing down.
type Vector struct {
	*canvas.Canvas
	ctx         *canvas.Context
	resolution  canvas.Resolution
	strokeWidth float64
}

var _ randshapes.Surface = (*Vector)(nil)

// New returns a vector surface of width and height in millimeters. Lines are stroked one dot wide at the given resolution.
func New(width, height float64, resolution canvas.Resolution) *Vector {
	v := &Vector{
		resolution:  resolution,
		strokeWidth: 1.0 / resolution.DPMM(),
	}
	v.reset(width, height)
	return v
}

func (v *Vector) reset(width, height float64) {
	v.Canvas = canvas.New(width, height)
	v.ctx = canvas.NewContext(v.Canvas)
	v.ctx.SetCoordSystem(canvas.CartesianIV)
}

// Resolution returns the resolution used for rasterization.
func (v *Vector) Resolution() canvas.Resolution {
	return v.resolution
}

// Clear discards everything drawn so far.
func (v *Vector) Clear() {
	v.reset(v.W, v.H)
}

// Line strokes a line from (x0,y0) to (x1,y1).
func (v *Vector) Line(x0, y0, x1, y1 float64, col color.Color) {
	p := &canvas.Path{}
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)

	v.ctx.SetFillColor(canvas.Transparent)
	v.ctx.SetStrokeColor(col)
	v.ctx.SetStrokeWidth(v.strokeWidth)
	v.ctx.DrawPath(0.0, 0.0, p)
}

// FillOval fills the ellipse inscribed in the rectangle at (x,y) of size w×h.
func (v *Vector) FillOval(x, y, w, h float64, col color.Color) {
	v.fill(x+w/2.0, y+h/2.0, canvas.Ellipse(w/2.0, h/2.0), col)
}

// FillRect fills the rectangle at (x,y) of size w×h.
func (v *Vector) FillRect(x, y, w, h float64, col color.Color) {
	v.fill(x, y, canvas.Rectangle(w, h), col)
}

// FillPolygon fills the polygon through pts.
func (v *Vector) FillPolygon(pts []canvas.Point, col color.Color) {
	v.fill(0.0, 0.0, polygon(pts), col)
}

// FillPath fills the closed path through pts.
func (v *Vector) FillPath(pts []canvas.Point, col color.Color) {
	v.fill(0.0, 0.0, polygon(pts), col)
}

func (v *Vector) fill(x, y float64, p *canvas.Path, col color.Color) {
	v.ctx.SetFillColor(col)
	v.ctx.SetStrokeColor(canvas.Transparent)
	v.ctx.DrawPath(x, y, p)
}

// Image rasterizes the drawing.
func (v *Vector) Image() image.Image {
	ras := rasterizer.New(v.W, v.H, v.resolution, canvas.DefaultColorSpace)
	v.RenderTo(ras)
	ras.Close()
	return ras
}

// WriteSVG writes the drawing as an SVG document to w.
func (v *Vector) WriteSVG(w io.Writer) error {
	r := svg.New(w, v.W, v.H, nil)
	v.RenderTo(r)
	return r.Close()
}

// polygon returns the closed path through pts.
func polygon(pts []canvas.Point) *canvas.Path {
	p := &canvas.Path{}
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	return p
}
