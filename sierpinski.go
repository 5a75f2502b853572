package lcurve

import "math"

// Sierpinski is the alphabet of the Sierpiński triangle. Both F and G draw.
//
//	axiom  F-G-G
//	F  →  F-G+F+G-F
//	G  →  GG
//
// Unlike the other alphabets, Plus turns right and Minus turns left.
type Sierpinski uint8

const (
	SierpinskiF Sierpinski = iota
	SierpinskiG
	SierpinskiPlus
	SierpinskiMinus
)

// SierpinskiStep is the Sierpiński turn angle, 120°.
const SierpinskiStep = 2 * math.Pi / 3

var SierpinskiAxiom = []Sierpinski{SierpinskiF, SierpinskiMinus, SierpinskiG, SierpinskiMinus, SierpinskiG}

var sierpinskiRules = [...][]Sierpinski{
	SierpinskiF: {
		SierpinskiF, SierpinskiMinus, SierpinskiG, SierpinskiPlus, SierpinskiF,
		SierpinskiPlus, SierpinskiG, SierpinskiMinus, SierpinskiF,
	},
	SierpinskiG:     {SierpinskiG, SierpinskiG},
	SierpinskiPlus:  {SierpinskiPlus},
	SierpinskiMinus: {SierpinskiMinus},
}

func (s Sierpinski) Produce() []Sierpinski { return sierpinskiRules[s] }

func (s Sierpinski) Interpret(t *Turtle) (Point, bool) {
	switch s {
	case SierpinskiF, SierpinskiG:
		return t.Forward(), true
	case SierpinskiPlus:
		t.Right()
	case SierpinskiMinus:
		t.Left()
	}
	return Point{}, false
}

func (s Sierpinski) String() string { return string("FG+-"[s]) }
