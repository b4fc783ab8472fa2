package randshapes

// Render clears s, draws the grid if enabled, and then draws p.NumShapes random shapes from g in generation order so that later shapes cover earlier ones. Surfaces implementing Flusher are flushed afterwards. It returns the number of shapes drawn.
func Render(s Surface, p Params, g *Generator) int {
	s.Clear()
	if p.ShowGrid {
		DrawGrid(s, p.Bounds)
	}

	n := 0
	for i := 0; i < p.NumShapes; i++ {
		g.Shape(p.Bounds, p.ClusterSize).Draw(s)
		n++
	}

	if f, ok := s.(Flusher); ok {
		f.Flush()
	}
	return n
}

// Generate validates the form fields and renders them to the surface of d, opening one if needed. Input is validated before anything is touched, so invalid input leaves the previous drawing in place and returns an error matching ErrInvalidInput.
func Generate(d *Display, f Fields, g *Generator) (int, error) {
	p, err := ParseFields(f)
	if err != nil {
		return 0, err
	}
	return Render(d.Surface(), p, g), nil
}
