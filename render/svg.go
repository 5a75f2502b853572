package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"honnef.co/go/lcurve"
)

// SVG writes pts as an SVG document. Without a gradient the curve is a single
// polyline; with one, every segment is its own line element.
func SVG(w io.Writer, pts lcurve.Polyline, st Style) error {
	if err := checkFinite(pts); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	aff := st.viewport(pts)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		st.Width, st.Height, st.Width, st.Height)
	if st.Background != nil {
		fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="%s" />`+"\n", hex(st.Background))
	}

	sw := st.strokeWidth()
	if len(st.Gradient) == 0 {
		fmt.Fprintf(bw, `<polyline fill="none" stroke="%s" stroke-width="%g" stroke-linejoin="round" stroke-linecap="round" points="`,
			hex(st.stroke()), sw)
		for i, pt := range pts {
			if i > 0 {
				bw.WriteByte(' ')
			}
			pt = pt.Transform(aff)
			fmt.Fprintf(bw, "%.3f,%.3f", pt.X, pt.Y)
		}
		bw.WriteString("\" />\n")
	} else {
		n := len(pts) - 1
		i := 0
		for seg := range pts.Segments() {
			seg = seg.Transform(aff)
			c := st.Gradient.At(segmentPos(i, n, st.Offset))
			fmt.Fprintf(bw, `<line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="%s" stroke-width="%g" stroke-linecap="round" />`+"\n",
				seg.P0.X, seg.P0.Y, seg.P1.X, seg.P1.Y, c.Hex(), sw)
			i++
		}
	}
	bw.WriteString("</svg>\n")

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "writing svg")
	}
	return nil
}

func hex(c color.Color) string {
	cc, _ := colorful.MakeColor(c)
	return cc.Hex()
}
