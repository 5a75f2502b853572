package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestRainbow(t *testing.T) {
	g := Rainbow()
	tests := []struct {
		t    float64
		want colorful.Color
	}{
		{-1, colorful.Color{R: 1}},
		{0, colorful.Color{R: 1}},
		{0.125, colorful.Color{R: 0.5, G: 0.5}},
		{0.25, colorful.Color{G: 1}},
		{0.5, colorful.Color{G: 0.5, B: 0.5}},
		{0.75, colorful.Color{B: 1}},
		{1, colorful.Color{R: 1}},
		{2, colorful.Color{R: 1}},
	}
	for _, tt := range tests {
		diff(t, tt.want, g.At(tt.t), approx)
	}
}

func TestGradientEmpty(t *testing.T) {
	var g Gradient
	diff(t, colorful.Color{}, g.At(0.5))
}

func TestParseGradient(t *testing.T) {
	g, err := ParseGradient([]string{"#ff0000", "#0000ff"})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, colorful.Color{R: 0.5, B: 0.5}, g.At(0.5), approx)

	g, err = ParseGradient([]string{"#00ff00"})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, colorful.Color{G: 1}, g.At(0.3), approx)

	g, err = ParseGradient(nil)
	if err != nil || g != nil {
		t.Errorf("got (%v, %v), want an empty gradient", g, err)
	}

	if _, err := ParseGradient([]string{"#ff0000", "purple"}); err == nil {
		t.Error("expected an error for a colour that isn't hex")
	}
}

func TestSegmentPos(t *testing.T) {
	tests := []struct {
		i, n, offset int
		want         float64
	}{
		{0, 1, 0, 0},
		{0, 5, 0, 0},
		{4, 5, 0, 1},
		{2, 5, 0, 0.5},
		{4, 5, 1, 0},
		{0, 5, -1, 1},
		{0, 5, 11, 0.25},
	}
	for _, tt := range tests {
		if got := segmentPos(tt.i, tt.n, tt.offset); got != tt.want {
			t.Errorf("segmentPos(%d, %d, %d) = %g, want %g", tt.i, tt.n, tt.offset, got, tt.want)
		}
	}
}
