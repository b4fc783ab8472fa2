package randshapes

import "math"

// GridSpacing is the distance between grid lines.
const GridSpacing = 20

// MaxGridLines is the maximum number of grid lines drawn along each axis, counted from the low end of the range.
const MaxGridLines = 1000

// GridLines returns the x positions of vertical grid lines and the y positions of horizontal grid lines, being the multiples of GridSpacing in [floor(XMin),XMax] and [floor(YMin),YMax] respectively, at most MaxGridLines per axis.
func GridLines(b Bounds) ([]float64, []float64) {
	return gridPositions(b.XMin, b.XMax), gridPositions(b.YMin, b.YMax)
}

// DrawGrid strokes the grid lines of b to s. Vertical lines span [YMin,YMax] and horizontal lines span [XMin,XMax].
func DrawGrid(s Surface, b Bounds) {
	xs, ys := GridLines(b)
	for _, x := range xs {
		s.Line(x, b.YMin, x, b.YMax, GridColor)
	}
	for _, y := range ys {
		s.Line(b.XMin, y, b.XMax, y, GridColor)
	}
}

func gridPositions(lo, hi float64) []float64 {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}

	start := math.Ceil(math.Floor(lo)/GridSpacing) * GridSpacing
	if hi < start {
		return nil
	}
	n := math.Floor((hi-start)/GridSpacing) + 1
	if MaxGridLines < n {
		n = MaxGridLines
	}

	ps := make([]float64, int(n))
	for i := range ps {
		ps[i] = start + float64(i)*GridSpacing
	}
	return ps
}
