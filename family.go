package lcurve

import (
	"math"
	"slices"
)

// Family bundles an alphabet with the parameters needed to draw its curve:
// axiom, nominal turn step and how much segments shrink per generation.
// It hides the alphabet's type so that curves can be chosen at run time.
type Family struct {
	Name string
	// Step is the turn angle, in radians.
	Step float64
	// Shrink is the factor by which segments shrink per generation so that
	// the curve keeps roughly the same extent.
	Shrink float64

	trace   func(n uint, t Turtle) Polyline
	predict func(n uint) int
	axiom   func() string
}

// Options controls how [Family.Curve] draws.
type Options struct {
	Iterations uint
	// Size is the segment length at generation 0. Later generations use
	// Size / Shrink^Iterations.
	Size    float64
	Origin  Point
	Heading float64
	// Condense removes redundant collinear vertices.
	Condense bool
}

// NewFamily returns a family for an arbitrary alphabet.
func NewFamily[S interface {
	Symbol[S]
	comparable
	String() string
}](name string, axiom []S, step, shrink float64) Family {
	axiom = slices.Clone(axiom)
	return Family{
		Name:   name,
		Step:   step,
		Shrink: shrink,
		trace: func(n uint, t Turtle) Polyline {
			return New(axiom).IterateN(n).Trace(t)
		},
		predict: func(n uint) int {
			return PredictLen(axiom, n)
		},
		axiom: func() string {
			return FormatSymbols(slices.Values(axiom))
		},
	}
}

var families = []Family{
	NewFamily("dragon", DragonAxiom, DragonStep, math.Sqrt2),
	NewFamily("terdragon", TerDragonAxiom, TerDragonStep, math.Sqrt(3)),
	NewFamily("koch", KochAxiom, KochStep, 3),
	NewFamily("peano", PeanoAxiom, PeanoStep, 3),
	NewFamily("gosper", GosperAxiom, GosperStep, math.Sqrt(7)),
	NewFamily("sierpinski", SierpinskiAxiom, SierpinskiStep, 2),
}

// Families returns the built-in curve families.
func Families() []Family {
	return slices.Clone(families)
}

// Lookup returns the built-in family called name.
func Lookup(name string) (Family, bool) {
	i := slices.IndexFunc(families, func(f Family) bool { return f.Name == name })
	if i < 0 {
		return Family{}, false
	}
	return families[i], true
}

// Axiom returns the family's axiom in string form.
func (f Family) Axiom() string {
	return f.axiom()
}

// Len returns the number of symbols after n generations.
func (f Family) Len(n uint) int {
	return f.predict(n)
}

// SegmentLength returns the length of one segment after n generations when
// generation 0 uses size.
func (f Family) SegmentLength(size float64, n uint) float64 {
	return size / math.Pow(f.Shrink, float64(n))
}

// Curve runs the whole pipeline: expansion, reification and, if requested,
// condensing. The result includes the final pen position.
func (f Family) Curve(opts Options) Polyline {
	t := Turtle{
		Position: opts.Origin,
		Heading:  opts.Heading,
		Step:     f.Step,
		Length:   f.SegmentLength(opts.Size, opts.Iterations),
	}
	pts := f.trace(opts.Iterations, t)
	if opts.Condense {
		n := len(pts)
		pts = Condense(pts)
		Logger().Debug("condensed curve", "family", f.Name, "from", n, "to", len(pts))
	}
	return pts
}
