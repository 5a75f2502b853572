package lcurve

import "math"

// TerDragon is the alphabet of the terdragon.
//
//	axiom  F
//	F  →  F+F-F
type TerDragon uint8

const (
	TerDragonF TerDragon = iota
	TerDragonPlus
	TerDragonMinus
)

// TerDragonStep is the terdragon's turn angle, 120°.
const TerDragonStep = 2 * math.Pi / 3

var TerDragonAxiom = []TerDragon{TerDragonF}

var terDragonRules = [...][]TerDragon{
	TerDragonF:     {TerDragonF, TerDragonPlus, TerDragonF, TerDragonMinus, TerDragonF},
	TerDragonPlus:  {TerDragonPlus},
	TerDragonMinus: {TerDragonMinus},
}

func (s TerDragon) Produce() []TerDragon { return terDragonRules[s] }

func (s TerDragon) Interpret(t *Turtle) (Point, bool) {
	switch s {
	case TerDragonF:
		return t.Forward(), true
	case TerDragonPlus:
		t.Left()
	case TerDragonMinus:
		t.Right()
	}
	return Point{}, false
}

func (s TerDragon) String() string { return string("F+-"[s]) }
