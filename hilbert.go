package lcurve

import "iter"

// HilbertD2XY maps a distance d along the Hilbert curve filling an n×n grid
// to the cell (x, y) it visits. n must be a power of two and d in [0, n²).
func HilbertD2XY(n, d int) (x, y int) {
	t := d
	for s := 1; s < n; s *= 2 {
		rx := 1 & (t / 2)
		ry := 1 & (t ^ rx)
		x, y = hilbertRot(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		t /= 4
	}
	return x, y
}

func hilbertRot(n, x, y, rx, ry int) (int, int) {
	if ry == 0 {
		if rx == 1 {
			x = n - 1 - x
			y = n - 1 - y
		}
		x, y = y, x
	}
	return x, y
}

// Hilbert yields the cell centers of the Hilbert curve of the given order, in
// curve order, on a grid of unit cells with its lower left corner at the
// origin. An order-k curve visits 4^k cells.
func Hilbert(order uint) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		n := 1 << order
		for d := range n * n {
			x, y := HilbertD2XY(n, d)
			if !yield(Pt(float64(x)+0.5, float64(y)+0.5)) {
				return
			}
		}
	}
}
