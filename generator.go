package randshapes

import "math/rand/v2"

// Size and focus ranges of generated shapes.
const (
	MinSize  = 10.0
	MaxSize  = 50.0
	MinFocus = 10
	MaxFocus = 30
)

// Generator samples random shapes from a single pseudo-random stream. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator drawing from src. Use a seeded source such as rand.NewPCG for reproducible shapes.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rand.New(src)}
}

// Shape returns one random shape with its anchor in b. The cluster size bounds the end point offset of line segments.
func (g *Generator) Shape(b Bounds, clusterSize int) Shape {
	kind := Kind(g.rng.IntN(int(numKinds)))
	anchor := b.sample(g.rng)
	size := g.rng.Float64()*(MaxSize-MinSize) + MinSize
	col := RandomColor(g.rng)

	switch kind {
	case LineSegmentKind:
		dx := g.offset(clusterSize)
		dy := g.offset(clusterSize)
		return NewLineSegment(anchor, dx, dy, size, col)
	case OvalKind:
		return NewOval(anchor, size, col)
	case RectangleKind:
		return NewRectangle(anchor, size, col)
	case TriangleKind:
		return NewTriangle(anchor, size, col)
	case QuadrilateralKind:
		return NewQuadrilateral(anchor, size, col)
	}
	focus := MinFocus + g.rng.IntN(MaxFocus-MinFocus)
	return NewParabola(anchor, size, float64(focus), col)
}

// Shapes returns n random shapes in generation order, or none if n <= 0.
func (g *Generator) Shapes(b Bounds, n, clusterSize int) []Shape {
	if n <= 0 {
		return nil
	}
	shapes := make([]Shape, n)
	for i := range shapes {
		shapes[i] = g.Shape(b, clusterSize)
	}
	return shapes
}

// offset returns an integer in [-c,c), or zero when c <= 0.
func (g *Generator) offset(c int) int {
	if c <= 0 {
		return 0
	}
	return g.rng.IntN(2*c) - c
}
