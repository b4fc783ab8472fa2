package fyne

import (
	"image"

	"fyne.io/fyne/v2"
	fyneCanvas "fyne.io/fyne/v2/canvas"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/randshapes/renderers/vector"
)

// Fyne is a drawing surface presented as an image in a Fyne window. Drawing operations become visible on Flush.
type Fyne struct {
	*vector.Vector
	image *fyneCanvas.Image
}

// New returns a Fyne surface of width and height in millimeters.
func New(width, height float64, resolution canvas.Resolution) *Fyne {
	w := int(width*resolution.DPMM() + 0.5)
	h := int(height*resolution.DPMM() + 0.5)
	img := fyneCanvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, w, h)))
	img.FillMode = fyneCanvas.ImageFillStretch
	img.SetMinSize(fyne.NewSize(float32(width), float32(height)))
	return &Fyne{
		Vector: vector.New(width, height, resolution),
		image:  img,
	}
}

// Content returns the canvas object to place in a window.
func (r *Fyne) Content() fyne.CanvasObject {
	return r.image
}

// Flush rasterizes the drawing and refreshes the window content.
func (r *Fyne) Flush() {
	r.image.Image = r.Vector.Image()
	r.image.Refresh()
}
