package randshapes

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/canvas"
)

// Kind is the type of a shape.
type Kind int

// see Kind
const (
	LineSegmentKind Kind = iota
	OvalKind
	RectangleKind
	TriangleKind
	QuadrilateralKind
	ParabolaKind
	numKinds
)

// Kinds lists all shape kinds.
var Kinds = []Kind{LineSegmentKind, OvalKind, RectangleKind, TriangleKind, QuadrilateralKind, ParabolaKind}

func (k Kind) String() string {
	switch k {
	case LineSegmentKind:
		return "LineSegment"
	case OvalKind:
		return "Oval"
	case RectangleKind:
		return "Rectangle"
	case TriangleKind:
		return "Triangle"
	case QuadrilateralKind:
		return "Quadrilateral"
	case ParabolaKind:
		return "Parabola"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape is a randomly parameterized primitive that draws itself to a surface.
type Shape interface {
	Kind() Kind
	Anchor() canvas.Point
	Color() colorful.Color
	Draw(Surface)
}

// base holds the parameters every shape kind shares.
type base struct {
	anchor canvas.Point
	size   float64
	color  colorful.Color
}

func (b base) Anchor() canvas.Point {
	return b.anchor
}

func (b base) Color() colorful.Color {
	return b.color
}

// Size returns the size of the shape, in [10,50) for generated shapes.
func (b base) Size() float64 {
	return b.size
}

// LineSegment is a straight line from its anchor to an end point offset by (DX,DY).
type LineSegment struct {
	base
	DX, DY int
	End    canvas.Point
}

// NewLineSegment returns a line segment from anchor to anchor+(dx,dy).
func NewLineSegment(anchor canvas.Point, dx, dy int, size float64, col colorful.Color) *LineSegment {
	end := anchor.Add(canvas.Point{X: float64(dx), Y: float64(dy)})
	return &LineSegment{base{anchor, size, col}, dx, dy, end}
}

func (*LineSegment) Kind() Kind { return LineSegmentKind }

func (l *LineSegment) Draw(s Surface) {
	s.Line(l.anchor.X, l.anchor.Y, l.End.X, l.End.Y, l.color)
}

// Oval is a filled circle with diameter size centered on its anchor.
type Oval struct {
	base
}

// NewOval returns an oval centered on anchor.
func NewOval(anchor canvas.Point, size float64, col colorful.Color) *Oval {
	return &Oval{base{anchor, size, col}}
}

func (*Oval) Kind() Kind { return OvalKind }

func (o *Oval) Draw(s Surface) {
	s.FillOval(o.anchor.X-o.size/2.0, o.anchor.Y-o.size/2.0, o.size, o.size, o.color)
}

// Rectangle is a filled square with side size centered on its anchor.
type Rectangle struct {
	base
}

// NewRectangle returns a rectangle centered on anchor.
func NewRectangle(anchor canvas.Point, size float64, col colorful.Color) *Rectangle {
	return &Rectangle{base{anchor, size, col}}
}

func (*Rectangle) Kind() Kind { return RectangleKind }

func (r *Rectangle) Draw(s Surface) {
	s.FillRect(r.anchor.X-r.size/2.0, r.anchor.Y-r.size/2.0, r.size, r.size, r.color)
}

// Triangle is a filled isosceles triangle centered on its anchor with the apex up.
type Triangle struct {
	base
}

// NewTriangle returns a triangle centered on anchor.
func NewTriangle(anchor canvas.Point, size float64, col colorful.Color) *Triangle {
	return &Triangle{base{anchor, size, col}}
}

func (*Triangle) Kind() Kind { return TriangleKind }

// Points returns the apex followed by the bottom-left and bottom-right vertices.
func (t *Triangle) Points() []canvas.Point {
	x, y, h := t.anchor.X, t.anchor.Y, t.size/2.0
	return []canvas.Point{
		{X: x, Y: y - h},
		{X: x - h, Y: y + h},
		{X: x + h, Y: y + h},
	}
}

func (t *Triangle) Draw(s Surface) {
	s.FillPolygon(t.Points(), t.color)
}

// Quadrilateral is a filled trapezoid centered on its anchor whose base is twice as wide as its top.
type Quadrilateral struct {
	base
}

// NewQuadrilateral returns a quadrilateral centered on anchor.
func NewQuadrilateral(anchor canvas.Point, size float64, col colorful.Color) *Quadrilateral {
	return &Quadrilateral{base{anchor, size, col}}
}

func (*Quadrilateral) Kind() Kind { return QuadrilateralKind }

// Points returns the vertices bottom-left, bottom-right, top-right, top-left.
func (q *Quadrilateral) Points() []canvas.Point {
	x, y, s := q.anchor.X, q.anchor.Y, q.size
	return []canvas.Point{
		{X: x - s/2.0, Y: y + s/2.0},
		{X: x + s/2.0, Y: y + s/2.0},
		{X: x + s/4.0, Y: y - s/2.0},
		{X: x - s/4.0, Y: y - s/2.0},
	}
}

func (q *Quadrilateral) Draw(s Surface) {
	s.FillPolygon(q.Points(), q.color)
}
