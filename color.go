package randshapes

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/canvas"
)

// GridColor is the stroke color of grid lines.
var GridColor = canvas.Hex("#d3d3d3")

// RandomColor returns an opaque color with red, green, and blue drawn uniformly from [0,1]. Each channel is clamped to at most 1.0.
func RandomColor(rng *rand.Rand) colorful.Color {
	r := math.Min(1.0, rng.Float64())
	g := math.Min(1.0, rng.Float64())
	b := math.Min(1.0, rng.Float64())
	return colorful.Color{R: r, G: g, B: b}
}
