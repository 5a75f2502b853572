package lcurve

import "math"

// Gosper is the alphabet of the Gosper curve (flowsnake). Both A and B draw.
//
//	axiom  A
//	A  →  A-B--B+A++AA+B-
//	B  →  +A-BB--B-A++A+B
type Gosper uint8

const (
	GosperA Gosper = iota
	GosperB
	GosperPlus
	GosperMinus
)

// GosperStep is the Gosper turn angle, 60°.
const GosperStep = math.Pi / 3

var GosperAxiom = []Gosper{GosperA}

var gosperRules = [...][]Gosper{
	GosperA: {
		GosperA, GosperMinus, GosperB, GosperMinus, GosperMinus, GosperB, GosperPlus, GosperA,
		GosperPlus, GosperPlus, GosperA, GosperA, GosperPlus, GosperB, GosperMinus,
	},
	GosperB: {
		GosperPlus, GosperA, GosperMinus, GosperB, GosperB, GosperMinus, GosperMinus, GosperB,
		GosperMinus, GosperA, GosperPlus, GosperPlus, GosperA, GosperPlus, GosperB,
	},
	GosperPlus:  {GosperPlus},
	GosperMinus: {GosperMinus},
}

func (s Gosper) Produce() []Gosper { return gosperRules[s] }

func (s Gosper) Interpret(t *Turtle) (Point, bool) {
	switch s {
	case GosperA, GosperB:
		return t.Forward(), true
	case GosperPlus:
		t.Left()
	case GosperMinus:
		t.Right()
	}
	return Point{}, false
}

func (s Gosper) String() string { return string("AB+-"[s]) }
