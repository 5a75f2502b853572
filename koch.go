package lcurve

import "math"

// Koch is the alphabet of the Koch snowflake.
//
//	axiom  F--F--F
//	F  →  F+F--F+F
//
// The snowflake's corners are 120°, drawn as two 60° turns.
type Koch uint8

const (
	KochF Koch = iota
	KochPlus
	KochMinus
)

// KochStep is the Koch turn angle, 60°.
const KochStep = math.Pi / 3

var KochAxiom = []Koch{KochF, KochMinus, KochMinus, KochF, KochMinus, KochMinus, KochF}

var kochRules = [...][]Koch{
	KochF:     {KochF, KochPlus, KochF, KochMinus, KochMinus, KochF, KochPlus, KochF},
	KochPlus:  {KochPlus},
	KochMinus: {KochMinus},
}

func (s Koch) Produce() []Koch { return kochRules[s] }

func (s Koch) Interpret(t *Turtle) (Point, bool) {
	switch s {
	case KochF:
		return t.Forward(), true
	case KochPlus:
		t.Left()
	case KochMinus:
		t.Right()
	}
	return Point{}, false
}

func (s Koch) String() string { return string("F+-"[s]) }
