package randshapes

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrInvalidInput is returned when a numeric field cannot be parsed.
var ErrInvalidInput = errors.New("Invalid input format!")

// Fields is the raw text of the input form.
type Fields struct {
	NumShapes   string
	XMin, XMax  string
	YMin, YMax  string
	ClusterSize string
	ShowGrid    bool
}

// DefaultFields returns the initial contents of the input form.
func DefaultFields() Fields {
	return Fields{
		NumShapes:   "30",
		XMin:        "0",
		XMax:        "500",
		YMin:        "0",
		YMax:        "500",
		ClusterSize: "30",
	}
}

// Params are the validated parameters of a render.
type Params struct {
	NumShapes   int
	Bounds      Bounds
	ClusterSize int
	ShowGrid    bool
}

// ParseFields parses the form fields into render parameters. Any malformed number results in an error matching ErrInvalidInput without identifying the field. Ranges are not validated.
func ParseFields(f Fields) (Params, error) {
	var err error
	p := Params{ShowGrid: f.ShowGrid}
	if p.NumShapes, err = parseInt(f.NumShapes); err != nil {
		return Params{}, err
	} else if p.Bounds.XMin, err = parseFloat(f.XMin); err != nil {
		return Params{}, err
	} else if p.Bounds.XMax, err = parseFloat(f.XMax); err != nil {
		return Params{}, err
	} else if p.Bounds.YMin, err = parseFloat(f.YMin); err != nil {
		return Params{}, err
	} else if p.Bounds.YMax, err = parseFloat(f.YMax); err != nil {
		return Params{}, err
	} else if p.ClusterSize, err = parseInt(f.ClusterSize); err != nil {
		return Params{}, err
	}
	return p, nil
}

// parseInt parses a 32-bit signed decimal integer without surrounding whitespace.
func parseInt(s string) (int, error) {
	b := []byte(s)
	i, n := strconv.ParseInt(b)
	if len(b) == 0 || n != len(b) || i < math.MinInt32 || math.MaxInt32 < i {
		return 0, fmt.Errorf("%w: integer %q", ErrInvalidInput, s)
	}
	return int(i), nil
}

// parseFloat parses a decimal floating-point number, ignoring surrounding whitespace. It also accepts NaN, Infinity with an optional sign, and a trailing d, D, f, or F type suffix. Hexadecimal numbers are not supported.
func parseFloat(s string) (float64, error) {
	b := bytes.TrimSpace([]byte(s))
	switch string(b) {
	case "NaN", "+NaN", "-NaN":
		return math.NaN(), nil
	case "Infinity", "+Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}
	if n := len(b); 1 < n && bytes.IndexByte([]byte("dDfF"), b[n-1]) != -1 {
		b = b[:n-1]
	}

	f, n := strconv.ParseFloat(b)
	if len(b) == 0 || n != len(b) {
		return 0, fmt.Errorf("%w: number %q", ErrInvalidInput, s)
	}
	return f, nil
}
