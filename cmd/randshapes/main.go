package main

import (
	"math/rand/v2"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/randshapes"
	canvasFyne "github.com/tdewolff/randshapes/renderers/fyne"
)

type Main struct {
	Seed   int64 `short:"s" default:"0" desc:"Random seed, 0 picks one at random"`
	Width  int   `default:"500" desc:"Drawing width"`
	Height int   `default:"500" desc:"Drawing height"`
	Debug  bool  `short:"d" desc:"Verbose logging"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Random drawing generator")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	if cmd.Width <= 0 || cmd.Height <= 0 {
		return argp.ShowUsage
	}

	level := zerolog.InfoLevel
	if cmd.Debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	seed := uint64(cmd.Seed)
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Info().Uint64("seed", seed).Msg("starting")
	gen := randshapes.NewGenerator(rand.NewPCG(seed, seed))

	a := app.New()
	w := a.NewWindow("Random Drawing Generator")
	w.SetMaster()

	width, height := float64(cmd.Width), float64(cmd.Height)
	var display *randshapes.Display
	display = randshapes.NewDisplay(func() randshapes.Surface {
		s := canvasFyne.New(width, height, canvas.DPMM(1.0))
		dw := a.NewWindow("Generated Drawing")
		dw.SetContent(s.Content())
		dw.Resize(fyne.NewSize(float32(width), float32(height)))
		dw.SetFixedSize(true)
		dw.SetOnClosed(func() {
			log.Debug().Msg("drawing window closed")
			display.Closed(s)
		})
		dw.Show()
		log.Debug().Msg("drawing window opened")
		return s
	})

	defaults := randshapes.DefaultFields()
	numShapes := newEntry(defaults.NumShapes)
	xMin, xMax := newEntry(defaults.XMin), newEntry(defaults.XMax)
	yMin, yMax := newEntry(defaults.YMin), newEntry(defaults.YMax)
	clusterSize := newEntry(defaults.ClusterSize)
	showGrid := widget.NewCheck("Show grid", nil)
	showGrid.SetChecked(defaults.ShowGrid)

	generate := widget.NewButton("Generate", func() {
		fields := randshapes.Fields{
			NumShapes:   numShapes.Text,
			XMin:        xMin.Text,
			XMax:        xMax.Text,
			YMin:        yMin.Text,
			YMax:        yMax.Text,
			ClusterSize: clusterSize.Text,
			ShowGrid:    showGrid.Checked,
		}
		n, err := randshapes.Generate(display, fields, gen)
		if err != nil {
			log.Debug().Err(err).Msg("rejected input")
			dialog.ShowError(randshapes.ErrInvalidInput, w)
			return
		}
		log.Debug().Int("shapes", n).Bool("grid", fields.ShowGrid).Msg("generated drawing")
	})

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Number of shapes:"), numShapes,
		widget.NewLabel("Min X:"), xMin,
		widget.NewLabel("Max X:"), xMax,
		widget.NewLabel("Min Y:"), yMin,
		widget.NewLabel("Max Y:"), yMax,
		widget.NewLabel("Cluster size:"), clusterSize,
	)
	w.SetContent(container.NewPadded(container.NewVBox(form, showGrid, generate)))
	w.Resize(fyne.NewSize(300, 250))
	w.ShowAndRun()
	return nil
}

func newEntry(text string) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(text)
	return e
}
