// Package render draws curve polylines as SVG documents and PNG images.
//
// Curves are built in a y-up space with arbitrary extent. Both renderers fit
// the curve's bounding box into the image, minus a margin, and flip it into
// y-down image space.
package render

import (
	"image/color"

	"github.com/pkg/errors"

	"honnef.co/go/lcurve"
)

// ErrNotFinite is returned for curves with NaN or infinite coordinates, such
// as those drawn with a NaN or infinite size.
var ErrNotFinite = errors.New("curve has non-finite coordinates")

func checkFinite(pts lcurve.Polyline) error {
	for i, pt := range pts {
		if pt.IsNaN() || pt.IsInf() {
			return errors.Wrapf(ErrNotFinite, "point %d is %v", i, pt)
		}
	}
	return nil
}

// Style describes the output image.
type Style struct {
	Width, Height int
	// Margin is kept free on every side, in pixels.
	Margin float64
	// StrokeWidth is the line width in pixels. Zero means 1.
	StrokeWidth float64
	// Stroke is the line colour when Gradient is empty. Nil means black.
	Stroke color.Color
	// Background fills the image. Nil leaves it transparent.
	Background color.Color
	// Gradient colours each segment by its position along the curve.
	Gradient Gradient
	// Offset rotates the gradient along the curve by that many segments.
	Offset int
}

// DefaultStyle is a 512×512 black-on-white style.
var DefaultStyle = Style{
	Width:       512,
	Height:      512,
	Margin:      16,
	StrokeWidth: 1,
	Stroke:      color.Black,
	Background:  color.White,
}

func (st Style) strokeWidth() float64 {
	if st.StrokeWidth <= 0 {
		return 1
	}
	return st.StrokeWidth
}

func (st Style) stroke() color.Color {
	if st.Stroke == nil {
		return color.Black
	}
	return st.Stroke
}

// viewport maps curve space to image space.
func (st Style) viewport(pts lcurve.Polyline) lcurve.Affine {
	dst := lcurve.Rect{
		X0: 0,
		Y0: 0,
		X1: float64(st.Width),
		Y1: float64(st.Height),
	}.Inflate(-st.Margin, -st.Margin)
	return lcurve.FitInto(pts.BoundingBox(), dst, true)
}
