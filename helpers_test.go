package randshapes

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/tdewolff/canvas"
)

// op is a recorded drawing operation.
type op struct {
	Name string
	Pts  []canvas.Point
	Col  color.Color
}

// recorder is a Surface that records every operation.
type recorder struct {
	ops     []op
	clears  int
	flushes int
}

func (r *recorder) Clear() {
	r.ops = r.ops[:0]
	r.clears++
}

func (r *recorder) Line(x0, y0, x1, y1 float64, col color.Color) {
	r.ops = append(r.ops, op{"line", []canvas.Point{{X: x0, Y: y0}, {X: x1, Y: y1}}, col})
}

func (r *recorder) FillOval(x, y, w, h float64, col color.Color) {
	r.ops = append(r.ops, op{"oval", []canvas.Point{{X: x, Y: y}, {X: w, Y: h}}, col})
}

func (r *recorder) FillRect(x, y, w, h float64, col color.Color) {
	r.ops = append(r.ops, op{"rect", []canvas.Point{{X: x, Y: y}, {X: w, Y: h}}, col})
}

func (r *recorder) FillPolygon(pts []canvas.Point, col color.Color) {
	r.ops = append(r.ops, op{"polygon", append([]canvas.Point{}, pts...), col})
}

func (r *recorder) FillPath(pts []canvas.Point, col color.Color) {
	r.ops = append(r.ops, op{"path", append([]canvas.Point{}, pts...), col})
}

func (r *recorder) Flush() {
	r.flushes++
}

// gridLines returns the number of recorded lines in the grid color.
func (r *recorder) gridLines() int {
	n := 0
	for _, o := range r.ops {
		if o.Name == "line" && o.Col == color.Color(GridColor) {
			n++
		}
	}
	return n
}

func (r *recorder) String() string {
	return fmt.Sprint(r.ops)
}

func seeded(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed))
}
