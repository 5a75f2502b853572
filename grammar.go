package lcurve

import (
	"fmt"
	"iter"
	"strings"
)

// Symbol is implemented by the alphabet of one curve family. S is the
// alphabet type itself, so that production rules stay within the alphabet.
//
// Implementations are pure tags: both methods depend only on the receiver's
// identity, never on neighbouring symbols.
type Symbol[S any] interface {
	// Produce returns the symbols that replace the receiver in the next
	// generation. Terminals return themselves. Callers must not modify the
	// returned slice.
	Produce() []S

	// Interpret applies the receiver to the turtle. It reports the
	// turtle's position from before the call if and only if the symbol
	// draws a segment.
	Interpret(t *Turtle) (Point, bool)
}

// Turtle is the pen state threaded through reification.
type Turtle struct {
	Position Point
	// Heading is the direction of travel in radians, 0 being the positive x
	// axis.
	Heading float64

	// Step is the angle added or subtracted by a single turn.
	Step float64
	// Length is the distance covered by a single forward move.
	Length float64
}

// Forward moves the turtle by Length along its heading and returns the
// position it started from.
func (t *Turtle) Forward() Point {
	from := t.Position
	t.Position = from.Translate(VecFromAngle(t.Heading).Mul(t.Length))
	return from
}

// Left turns anti-clockwise by Step.
func (t *Turtle) Left() { t.Heading += t.Step }

// Right turns clockwise by Step.
func (t *Turtle) Right() { t.Heading -= t.Step }

// FormatSymbols concatenates the string forms of the symbols in seq, as in
// "F+F--F+F".
func FormatSymbols[S fmt.Stringer](seq iter.Seq[S]) string {
	var sb strings.Builder
	for s := range seq {
		sb.WriteString(s.String())
	}
	return sb.String()
}
