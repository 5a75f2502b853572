package render

import (
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Stop is a colour at a position in [0, 1] along a gradient.
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Gradient is a sequence of stops sorted by position. Colours between stops
// are blended linearly in RGB.
type Gradient []Stop

// Rainbow returns a cyclic gradient running red, green, blue and back to
// red.
func Rainbow() Gradient {
	return Gradient{
		{0, colorful.Color{R: 1}},
		{0.25, colorful.Color{G: 1}},
		{0.75, colorful.Color{B: 1}},
		{1, colorful.Color{R: 1}},
	}
}

// ParseGradient returns a gradient with the hex colours spread evenly over
// [0, 1].
func ParseGradient(hexes []string) (Gradient, error) {
	switch len(hexes) {
	case 0:
		return nil, nil
	case 1:
		c, err := colorful.Hex(hexes[0])
		if err != nil {
			return nil, errors.Wrapf(err, "gradient colour %q", hexes[0])
		}
		return Gradient{{0, c}, {1, c}}, nil
	}
	g := make(Gradient, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, errors.Wrapf(err, "gradient colour %q", h)
		}
		g[i] = Stop{float64(i) / float64(len(hexes)-1), c}
	}
	return g, nil
}

// At returns the colour at t. t is clamped to the range of the stops.
func (g Gradient) At(t float64) colorful.Color {
	switch len(g) {
	case 0:
		return colorful.Color{}
	case 1:
		return g[0].Color
	}
	if t <= g[0].Pos {
		return g[0].Color
	}
	if t >= g[len(g)-1].Pos {
		return g[len(g)-1].Color
	}
	i, _ := slices.BinarySearchFunc(g, t, func(s Stop, t float64) int {
		switch {
		case s.Pos < t:
			return -1
		case s.Pos > t:
			return 1
		default:
			return 0
		}
	})
	if g[i].Pos == t {
		return g[i].Color
	}
	lo, hi := g[i-1], g[i]
	return lo.Color.BlendRgb(hi.Color, (t-lo.Pos)/(hi.Pos-lo.Pos)).Clamped()
}

// segmentPos returns the gradient position of segment i of n, rotated by
// offset segments. Offsetting by one per frame makes the colours cycle
// along the curve.
func segmentPos(i, n, offset int) float64 {
	if n <= 1 {
		return 0
	}
	k := (i + offset) % n
	if k < 0 {
		k += n
	}
	return math.Min(float64(k)/float64(n-1), 1)
}
