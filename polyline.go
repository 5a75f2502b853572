package lcurve

import (
	"iter"
	"slices"
)

// Polyline is an ordered sequence of vertices joined by straight segments.
type Polyline []Point

// Segments returns an iterator over the segments between consecutive
// vertices.
func (p Polyline) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(p); i++ {
			if !yield(Line{p[i-1], p[i]}) {
				return
			}
		}
	}
}

// Length returns the sum of the segment lengths.
func (p Polyline) Length() float64 {
	var l float64
	for seg := range p.Segments() {
		l += seg.Length()
	}
	return l
}

// BoundingBox returns the smallest rectangle containing every vertex. It
// returns the zero Rect for an empty polyline.
func (p Polyline) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{p[0].X, p[0].Y, p[0].X, p[0].Y}
	for _, pt := range p[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// Transform returns a new polyline with every vertex transformed.
func (p Polyline) Transform(aff Affine) Polyline {
	return slices.Collect(Transform(slices.Values(p), aff))
}

// Condense returns the polyline with redundant collinear vertices removed.
// See [Condense].
func (p Polyline) Condense() Polyline {
	return Condense(p)
}

// Closed reports whether the last vertex coincides with the first, within
// [CollinearTolerance].
func (p Polyline) Closed() bool {
	return len(p) > 2 && p[0].DistanceSquared(p[len(p)-1]) < CollinearTolerance*CollinearTolerance
}
