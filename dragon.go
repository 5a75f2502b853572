package lcurve

import "math"

// Dragon is the alphabet of the Heighway dragon.
//
//	axiom  FX
//	X  →  X+YF+
//	Y  →  -FX-Y
type Dragon uint8

const (
	DragonF Dragon = iota
	DragonX
	DragonY
	DragonPlus
	DragonMinus
)

// DragonStep is the dragon's turn angle, 90°.
const DragonStep = math.Pi / 2

var DragonAxiom = []Dragon{DragonF, DragonX}

var dragonRules = [...][]Dragon{
	DragonF:     {DragonF},
	DragonX:     {DragonX, DragonPlus, DragonY, DragonF, DragonPlus},
	DragonY:     {DragonMinus, DragonF, DragonX, DragonMinus, DragonY},
	DragonPlus:  {DragonPlus},
	DragonMinus: {DragonMinus},
}

func (s Dragon) Produce() []Dragon { return dragonRules[s] }

func (s Dragon) Interpret(t *Turtle) (Point, bool) {
	switch s {
	case DragonF:
		return t.Forward(), true
	case DragonPlus:
		t.Left()
	case DragonMinus:
		t.Right()
	}
	return Point{}, false
}

func (s Dragon) String() string { return string("FXY+-"[s]) }
