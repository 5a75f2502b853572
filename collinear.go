package lcurve

import (
	"iter"
	"math"
	"slices"
)

// CollinearTolerance bounds twice the signed area below which three points
// count as collinear. It is 1e5 times the float32 machine epsilon, well above
// the error of exact arithmetic, because headings accumulate rounding error
// through repeated turns. Re-validate against the curves in use before
// tightening it.
const CollinearTolerance = 1e5 * 0x1p-23

// Collinear reports whether p1, p2 and p3 lie on one line, within
// [CollinearTolerance].
func Collinear(p1, p2, p3 Point) bool {
	area2 := p1.X*(p2.Y-p3.Y) +
		p2.X*(p3.Y-p1.Y) +
		p3.X*(p1.Y-p2.Y)
	return math.Abs(area2) < CollinearTolerance
}

// Condense removes every vertex that is collinear with its neighbours,
// reducing straight runs to their two ends. The first and last points are
// always kept. Inputs with fewer than three points are returned as a copy.
//
// Removing a vertex makes its neighbours adjacent, and they are checked
// again. Paths that double back therefore collapse fully, and the result
// has no three consecutive collinear points, so condensing it again changes
// nothing.
func Condense(pts []Point) []Point {
	if len(pts) < 3 {
		return slices.Clone(pts)
	}
	out := make([]Point, 0, len(pts))
	for _, pt := range pts {
		out = pushCondensed(out, pt)
	}
	return out
}

// pushCondensed appends pt to out, which has no three consecutive collinear
// points, and restores that property by dropping middle points from the end.
func pushCondensed(out []Point, pt Point) []Point {
	out = append(out, pt)
	for n := len(out); n >= 3 && Collinear(out[n-3], out[n-2], out[n-1]); n = len(out) {
		out[n-2] = out[n-1]
		out = out[:n-1]
	}
	return out
}

// CondenseSeq is the sequence form of [Condense] and yields the same points.
//
// A vertex can be removed by any later point of a path that doubles back,
// so nothing is yielded before seq is exhausted. Only the condensed points
// are buffered, not the whole of seq; condensing a reified curve this way
// never materializes the raw path.
func CondenseSeq(seq iter.Seq[Point]) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		var out []Point
		for pt := range seq {
			out = pushCondensed(out, pt)
		}
		for _, pt := range out {
			if !yield(pt) {
				return
			}
		}
	}
}
