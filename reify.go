package lcurve

import "iter"

// Reify interprets seq as turtle instructions, starting from the state t,
// and yields one point per drawing symbol: the position the pen was at
// before it moved.
//
// The returned iterator is single-pass but restartable. Every range over it
// starts again from t, and stopping early leaves the rest of seq unvisited,
// which allows drawing a curve progressively.
func Reify[S Symbol[S]](seq iter.Seq[S], t Turtle) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		t := t
		for s := range seq {
			if pt, ok := s.Interpret(&t); ok {
				if !yield(pt) {
					return
				}
			}
		}
	}
}

// Reify interprets the working sequence with a turtle at origin heading
// along the positive x axis. step is the turn angle in radians and length
// the distance of one forward move.
func (ls LSystem[S]) Reify(step, length float64, origin Point) iter.Seq[Point] {
	return Reify(ls.All(), Turtle{Position: origin, Step: step, Length: length})
}

// Trace collects the points of the working sequence interpreted from t and
// appends the final pen position, so that the result contains every vertex
// of the drawn path. Sequences that draw nothing yield an empty polyline.
func (ls LSystem[S]) Trace(t Turtle) Polyline {
	var out Polyline
	for _, s := range ls.symbols {
		if pt, ok := s.Interpret(&t); ok {
			out = append(out, pt)
		}
	}
	if len(out) > 0 {
		out = append(out, t.Position)
	}
	return out
}

// Path is Trace with a turtle at origin heading along the positive x axis.
func (ls LSystem[S]) Path(step, length float64, origin Point) Polyline {
	return ls.Trace(Turtle{Position: origin, Step: step, Length: length})
}
