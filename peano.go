package lcurve

import "math"

// Peano is the alphabet of the Peano curve. L and R only steer the
// expansion and draw nothing.
//
//	axiom  L
//	L  →  LFRFL-F-RFLFR+F+LFRFL
//	R  →  RFLFR+F+LFRFL-F-RFLFR
type Peano uint8

const (
	PeanoF Peano = iota
	PeanoL
	PeanoR
	PeanoPlus
	PeanoMinus
)

// PeanoStep is the Peano turn angle, 90°.
const PeanoStep = math.Pi / 2

var PeanoAxiom = []Peano{PeanoL}

var peanoRules = [...][]Peano{
	PeanoF: {PeanoF},
	PeanoL: {
		PeanoL, PeanoF, PeanoR, PeanoF, PeanoL, PeanoMinus, PeanoF, PeanoMinus,
		PeanoR, PeanoF, PeanoL, PeanoF, PeanoR, PeanoPlus, PeanoF, PeanoPlus,
		PeanoL, PeanoF, PeanoR, PeanoF, PeanoL,
	},
	PeanoR: {
		PeanoR, PeanoF, PeanoL, PeanoF, PeanoR, PeanoPlus, PeanoF, PeanoPlus,
		PeanoL, PeanoF, PeanoR, PeanoF, PeanoL, PeanoMinus, PeanoF, PeanoMinus,
		PeanoR, PeanoF, PeanoL, PeanoF, PeanoR,
	},
	PeanoPlus:  {PeanoPlus},
	PeanoMinus: {PeanoMinus},
}

func (s Peano) Produce() []Peano { return peanoRules[s] }

func (s Peano) Interpret(t *Turtle) (Point, bool) {
	switch s {
	case PeanoF:
		return t.Forward(), true
	case PeanoPlus:
		t.Left()
	case PeanoMinus:
		t.Right()
	}
	return Point{}, false
}

func (s Peano) String() string { return string("FLR+-"[s]) }
