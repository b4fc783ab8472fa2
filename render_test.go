package randshapes

import (
	"errors"
	"testing"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/test"
)

func TestRenderCount(t *testing.T) {
	for _, n := range []int{0, 1, 7, 30, 250} {
		r := &recorder{}
		p := Params{NumShapes: n, Bounds: Bounds{0.0, 500.0, 0.0, 500.0}, ClusterSize: 30}
		test.T(t, Render(r, p, seeded(1)), n)
		test.T(t, len(r.ops), n)
		test.T(t, r.clears, 1)
		test.T(t, r.flushes, 1)
	}
}

func TestRenderNegativeCount(t *testing.T) {
	r := &recorder{}
	p := Params{NumShapes: -5, Bounds: Bounds{0.0, 500.0, 0.0, 500.0}, ClusterSize: 30}
	test.T(t, Render(r, p, seeded(1)), 0)
	test.T(t, len(r.ops), 0)
	test.T(t, r.clears, 1)
}

func TestRenderNothing(t *testing.T) {
	r := &recorder{}
	r.Line(0.0, 0.0, 1.0, 1.0, GridColor)
	test.T(t, Render(r, Params{Bounds: Bounds{0.0, 500.0, 0.0, 500.0}}, seeded(1)), 0)
	test.T(t, r.clears, 1)
	test.T(t, len(r.ops), 0)
}

func TestRenderSingleShapeAtOrigin(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		r := &recorder{}
		test.T(t, Render(r, Params{NumShapes: 1, ClusterSize: 10}, seeded(seed)), 1)

		shape := seeded(seed).Shape(Bounds{}, 10)
		test.T(t, shape.Anchor(), canvas.Point{X: 0.0, Y: 0.0}, shape.Kind())

		want := &recorder{}
		shape.Draw(want)
		test.T(t, r.ops, want.ops, shape.Kind())
	}
}

func TestRenderGrid(t *testing.T) {
	r := &recorder{}
	p := Params{Bounds: Bounds{0.0, 40.0, 0.0, 40.0}, ShowGrid: true}
	Render(r, p, seeded(1))
	test.T(t, len(r.ops), 6)
	test.T(t, r.gridLines(), 6)

	r = &recorder{}
	p.ShowGrid = false
	Render(r, p, seeded(1))
	test.T(t, r.gridLines(), 0)
}

func TestRenderGridBeforeShapes(t *testing.T) {
	r := &recorder{}
	p := Params{NumShapes: 10, Bounds: Bounds{0.0, 40.0, 0.0, 40.0}, ClusterSize: 5, ShowGrid: true}
	test.T(t, Render(r, p, seeded(2)), 10)
	test.T(t, len(r.ops), 16)
	test.T(t, r.gridLines(), 6)
	for _, o := range r.ops[:6] {
		test.T(t, o.Col, GridColor)
	}
}

func TestRenderIdempotent(t *testing.T) {
	p := Params{NumShapes: 40, Bounds: Bounds{0.0, 500.0, 0.0, 500.0}, ClusterSize: 30, ShowGrid: true}
	a, b := &recorder{}, &recorder{}
	Render(a, p, seeded(42))
	Render(b, p, seeded(42))
	test.T(t, a.ops, b.ops)
}

func TestRenderClearsBetweenCalls(t *testing.T) {
	r := &recorder{}
	g := seeded(3)
	p := Params{NumShapes: 5, Bounds: Bounds{0.0, 500.0, 0.0, 500.0}, ClusterSize: 30}
	Render(r, p, g)
	Render(r, p, g)
	test.T(t, r.clears, 2)
	test.T(t, len(r.ops), 5)
}

func TestGenerate(t *testing.T) {
	opened := 0
	r := &recorder{}
	d := NewDisplay(func() Surface {
		opened++
		return r
	})

	n, err := Generate(d, DefaultFields(), seeded(1))
	test.Error(t, err)
	test.T(t, n, 30)
	test.T(t, len(r.ops), 30)
	test.T(t, opened, 1)
	test.T(t, d.State(), SurfaceOpen)
}

func TestGenerateInvalid(t *testing.T) {
	opened := 0
	r := &recorder{}
	d := NewDisplay(func() Surface {
		opened++
		return r
	})

	f := DefaultFields()
	f.XMax = "wide"
	n, err := Generate(d, f, seeded(1))
	test.That(t, errors.Is(err, ErrInvalidInput))
	test.T(t, n, 0)
	test.T(t, opened, 0)
	test.T(t, d.State(), NoSurface)

	// a drawing stays intact after invalid input
	_, err = Generate(d, DefaultFields(), seeded(1))
	test.Error(t, err)
	_, err = Generate(d, f, seeded(1))
	test.That(t, errors.Is(err, ErrInvalidInput))
	test.T(t, r.clears, 1)
	test.T(t, len(r.ops), 30)
}
