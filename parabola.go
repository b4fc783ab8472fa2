package randshapes

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/canvas"
)

// ParabolaStep is the horizontal distance between samples of a parabola.
const ParabolaStep = 0.5

// Parabola is a filled region bounded by the arc y = x²/(4·focus) around its anchor (the vertex) and closed towards a point focus below the left end of the arc.
type Parabola struct {
	base
	Focus float64
}

// NewParabola returns a parabola with its vertex at anchor, spanning size horizontally.
func NewParabola(anchor canvas.Point, size, focus float64, col colorful.Color) *Parabola {
	return &Parabola{base{anchor, size, col}, focus}
}

func (*Parabola) Kind() Kind { return ParabolaKind }

// Points returns the outline of the parabola. The first point is the left end of the arc shifted down by the focus, followed by the arc sampled every ParabolaStep from -size/2 up to size/2. The last sample may fall short of size/2 due to floating-point accumulation.
func (p *Parabola) Points() []canvas.Point {
	x, y, w := p.anchor.X, p.anchor.Y, p.size
	pts := make([]canvas.Point, 0, max(int(w/ParabolaStep)+2, 1))
	pts = append(pts, canvas.Point{X: x - w/2.0, Y: y + p.Focus})
	for i := -w / 2.0; i <= w/2.0; i += ParabolaStep {
		pts = append(pts, canvas.Point{X: x + i, Y: y + i*i/(4.0*p.Focus)})
	}
	return pts
}

func (p *Parabola) Draw(s Surface) {
	s.FillPath(p.Points(), p.color)
}
