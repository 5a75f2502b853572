package main

import (
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"honnef.co/go/lcurve"
	"honnef.co/go/lcurve/render"
)

// ErrTooLarge is returned for jobs whose expansion would exceed the symbol
// limit.
var ErrTooLarge = errors.New("curve too large")

// Job describes one curve to draw. Jobs are read from YAML streams, one
// document per job.
type Job struct {
	// Curve names a built-in family. Ignored when Grammar is set.
	Curve   string   `yaml:"curve"`
	Grammar *Grammar `yaml:"grammar"`

	Iterations uint    `yaml:"iterations"`
	Size       float64 `yaml:"size"`
	// Heading is the initial heading in degrees.
	Heading  float64 `yaml:"heading"`
	Condense *bool   `yaml:"condense"`

	// Output is a file name, or "-" or empty for standard output.
	Output string `yaml:"output"`
	// Format is "svg" or "png". Defaults to the output's extension, then svg.
	Format string `yaml:"format"`

	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	Margin      *float64 `yaml:"margin"`
	StrokeWidth float64  `yaml:"stroke_width"`
	Stroke      string   `yaml:"stroke"`
	Background  string   `yaml:"background"`
	// Gradient lists hex colours, or the single word "rainbow".
	Gradient []string `yaml:"gradient"`
	Offset   int      `yaml:"offset"`
}

// Grammar defines a custom alphabet.
type Grammar struct {
	Name  string `yaml:"name"`
	Axiom string `yaml:"axiom"`
	// Angle is the turn step in degrees.
	Angle float64 `yaml:"angle"`
	// Shrink is the per-generation segment shrink factor. Defaults to 1.
	Shrink float64  `yaml:"shrink"`
	Rules  []string `yaml:"rules"`
	Draw   string   `yaml:"draw"`
	Left   string   `yaml:"left"`
	Right  string   `yaml:"right"`
}

// Decoder reads jobs from a multi-document YAML stream.
type Decoder struct {
	yamlDecoder *yaml.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	return &Decoder{yamlDecoder: dec}
}

// Decode returns the next job, or io.EOF at the end of the stream.
func (dec *Decoder) Decode() (*Job, error) {
	job := &Job{}
	if err := dec.yamlDecoder.Decode(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (j *Job) family() (lcurve.Family, error) {
	if g := j.Grammar; g != nil {
		rules, err := lcurve.ParseRules(g.Rules)
		if err != nil {
			return lcurve.Family{}, errors.Wrap(err, "parsing grammar")
		}
		draw := g.Draw
		if draw == "" {
			draw = "F"
		}
		tb, err := lcurve.NewTable(lcurve.TableSpec{
			Rules: rules,
			Draw:  draw,
			Left:  g.Left,
			Right: g.Right,
		})
		if err != nil {
			return lcurve.Family{}, errors.Wrap(err, "building grammar")
		}
		if g.Axiom == "" {
			return lcurve.Family{}, errors.New("grammar has no axiom")
		}
		shrink := g.Shrink
		if shrink == 0 {
			shrink = 1
		}
		name := g.Name
		if name == "" {
			name = "custom"
		}
		return lcurve.NewFamily(name, tb.Symbols(g.Axiom), g.Angle*math.Pi/180, shrink), nil
	}

	f, ok := lcurve.Lookup(j.Curve)
	if !ok {
		return lcurve.Family{}, errors.Errorf("unknown curve %q", j.Curve)
	}
	return f, nil
}

func (j *Job) style() (render.Style, error) {
	st := render.DefaultStyle
	if j.Width > 0 {
		st.Width = j.Width
	}
	if j.Height > 0 {
		st.Height = j.Height
	}
	if j.Margin != nil {
		st.Margin = *j.Margin
	}
	if j.StrokeWidth > 0 {
		st.StrokeWidth = j.StrokeWidth
	}
	st.Offset = j.Offset

	var err error
	if j.Stroke != "" {
		if st.Stroke, err = parseColor(j.Stroke); err != nil {
			return st, errors.Wrap(err, "stroke")
		}
		if st.Stroke == nil {
			return st, errors.New(`stroke cannot be "none"`)
		}
	}
	if j.Background != "" {
		if st.Background, err = parseColor(j.Background); err != nil {
			return st, errors.Wrap(err, "background")
		}
	}
	if len(j.Gradient) == 1 && j.Gradient[0] == "rainbow" {
		st.Gradient = render.Rainbow()
	} else if st.Gradient, err = render.ParseGradient(j.Gradient); err != nil {
		return st, err
	}
	return st, nil
}

// parseColor accepts a hex colour or "none".
func parseColor(s string) (color.Color, error) {
	if s == "none" {
		return nil, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, errors.Wrapf(err, "colour %q", s)
	}
	return c, nil
}

func (j *Job) format() (string, error) {
	f := strings.ToLower(j.Format)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(j.Output)), ".")
	}
	switch f {
	case "", "svg":
		return "svg", nil
	case "png":
		return "png", nil
	default:
		return "", errors.Errorf("unsupported format %q", f)
	}
}

// Polyline builds the job's curve. It refuses jobs whose expansion would
// exceed maxSymbols.
func (j *Job) Polyline(maxSymbols int) (lcurve.Polyline, error) {
	f, err := j.family()
	if err != nil {
		return nil, err
	}
	if n := f.Len(j.Iterations); maxSymbols > 0 && n > maxSymbols {
		lcurve.Logger().Warn("refusing job", "curve", f.Name, "iterations", j.Iterations, "symbols", n)
		return nil, errors.Wrapf(ErrTooLarge, "%s with %d iterations has %d symbols, limit is %d",
			f.Name, j.Iterations, n, maxSymbols)
	}
	size := j.Size
	if size == 0 {
		size = 100
	}
	condense := true
	if j.Condense != nil {
		condense = *j.Condense
	}
	return f.Curve(lcurve.Options{
		Iterations: j.Iterations,
		Size:       size,
		Heading:    j.Heading * math.Pi / 180,
		Condense:   condense,
	}), nil
}

// Render builds the curve and writes it to w in the job's format.
func (j *Job) Render(w io.Writer, maxSymbols int) error {
	format, err := j.format()
	if err != nil {
		return err
	}
	st, err := j.style()
	if err != nil {
		return err
	}
	pts, err := j.Polyline(maxSymbols)
	if err != nil {
		return err
	}
	lcurve.Logger().Info("rendering", "points", len(pts), "format", format, "output", j.Output)
	if format == "png" {
		return render.PNG(w, pts, st)
	}
	return render.SVG(w, pts, st)
}
