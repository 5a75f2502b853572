package render

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/vector"

	"honnef.co/go/lcurve"
)

// gradientBands is the number of colour bands a gradient is quantized to
// when rasterizing. Each band costs one pass over the image.
const gradientBands = 64

// jointSides is the number of sides of the polygon drawn at every vertex to
// round off joints.
const jointSides = 12

// Rasterize draws pts into a new image. Curves with non-finite coordinates
// leave the image blank; see [PNG] for a variant that reports them.
func Rasterize(pts lcurve.Polyline, st Style) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, st.Width, st.Height))
	if st.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(st.Background), image.Point{}, draw.Src)
	}
	if len(pts) == 0 || checkFinite(pts) != nil {
		return dst
	}

	pts = pts.Transform(st.viewport(pts))
	hw := float32(st.strokeWidth() / 2)
	z := vector.NewRasterizer(st.Width, st.Height)

	if len(st.Gradient) == 0 || len(pts) < 2 {
		for i := range pts {
			addJoint(z, pts[i], hw)
			if i > 0 {
				addSegment(z, lcurve.Line{P0: pts[i-1], P1: pts[i]}, hw)
			}
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(st.stroke()), image.Point{})
		return dst
	}

	// Group segments into colour bands so the image is traversed once per
	// band instead of once per segment.
	n := len(pts) - 1
	var bands [gradientBands][]int
	for i := range n {
		b := int(segmentPos(i, n, st.Offset) * gradientBands)
		b = min(b, gradientBands-1)
		bands[b] = append(bands[b], i)
	}
	for b, segs := range bands {
		if len(segs) == 0 {
			continue
		}
		z.Reset(st.Width, st.Height)
		for _, i := range segs {
			addSegment(z, lcurve.Line{P0: pts[i], P1: pts[i+1]}, hw)
			addJoint(z, pts[i+1], hw)
			if i == 0 {
				addJoint(z, pts[0], hw)
			}
		}
		c := st.Gradient.At((float64(b) + 0.5) / gradientBands)
		z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	}
	lcurve.Logger().Debug("rasterized curve", "segments", n, "width", st.Width, "height", st.Height)
	return dst
}

// PNG rasterizes pts and encodes the result as PNG.
func PNG(w io.Writer, pts lcurve.Polyline, st Style) error {
	if err := checkFinite(pts); err != nil {
		return err
	}
	if err := png.Encode(w, Rasterize(pts, st)); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	return nil
}

// addSegment adds the rectangle covering a stroked segment. All shapes are
// wound the same way, so overlaps accumulate instead of cancelling.
func addSegment(z *vector.Rasterizer, l lcurve.Line, hw float32) {
	d := l.P1.Sub(l.P0)
	length := d.Hypot()
	if length == 0 {
		return
	}
	nx := float32(-d.Y/length) * hw
	ny := float32(d.X/length) * hw
	x0, y0 := float32(l.P0.X), float32(l.P0.Y)
	x1, y1 := float32(l.P1.X), float32(l.P1.Y)
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

// addJoint adds a small regular polygon centered on pt.
func addJoint(z *vector.Rasterizer, pt lcurve.Point, r float32) {
	for k := range jointSides {
		sin, cos := math.Sincos(-2 * math.Pi * float64(k) / jointSides)
		x := float32(pt.X) + r*float32(cos)
		y := float32(pt.Y) + r*float32(sin)
		if k == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}
