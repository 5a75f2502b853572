package lcurve

import "iter"

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between the y-up space curves are built in and y-down image space.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// FitInto returns the transform that uniformly scales src to the largest size
// that fits inside dst and centers it there. With flip set, the y axis is
// inverted, mapping a y-up curve into y-down image space.
//
// A degenerate src (zero width or height) is scaled by the other dimension;
// a single point is only translated.
func FitInto(src, dst Rect, flip bool) Affine {
	src = src.Abs()
	dst = dst.Abs()
	var s float64
	switch w, h := src.Width(), src.Height(); {
	case w == 0 && h == 0:
		s = 1
	case w == 0:
		s = dst.Height() / h
	case h == 0:
		s = dst.Width() / w
	default:
		s = min(dst.Width()/w, dst.Height()/h)
	}
	c := Vec2(src.Center())
	aff := Translate(c.Negate()).ThenScale(s, s)
	if flip {
		aff = FlipY.Mul(aff)
	}
	return aff.ThenTranslate(Vec2(dst.Center()))
}

func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
