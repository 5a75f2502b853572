package lcurve

import (
	"testing"
)

func mustTable(t *testing.T, spec TableSpec) *Table {
	t.Helper()
	tb, err := NewTable(spec)
	if err != nil {
		t.Fatal(err)
	}
	return tb
}

func TestTableKoch(t *testing.T) {
	tb := mustTable(t, TableSpec{
		Rules: map[rune]string{'F': "F+F--F+F"},
		Draw:  "F",
	})
	const n = 3
	table := New(tb.Symbols("F--F--F")).IterateN(n)
	builtin := New(KochAxiom).IterateN(n)

	if got, want := FormatSymbols(table.All()), FormatSymbols(builtin.All()); got != want {
		t.Fatalf("expansions differ:\ngot  %s\nwant %s", got, want)
	}
	diff(t,
		builtin.Path(KochStep, 1, Point{}),
		table.Path(KochStep, 1, Point{}),
		approx)
}

func TestTableSierpinskiConvention(t *testing.T) {
	// The Sierpiński alphabet turns right on '+'.
	tb := mustTable(t, TableSpec{
		Rules: map[rune]string{'F': "F-G+F+G-F", 'G': "GG"},
		Draw:  "FG",
		Left:  "-",
		Right: "+",
	})
	const n = 3
	table := New(tb.Symbols("F-G-G")).IterateN(n)
	builtin := New(SierpinskiAxiom).IterateN(n)
	diff(t,
		builtin.Path(SierpinskiStep, 1, Point{}),
		table.Path(SierpinskiStep, 1, Point{}),
		approx)
}

func TestTableUnknownRunes(t *testing.T) {
	tb := mustTable(t, TableSpec{Draw: "F"})
	ls := New(tb.Symbols("FxF")).IterateN(2)
	if got := FormatSymbols(ls.All()); got != "FxF" {
		t.Errorf("got %q, want %q", got, "FxF")
	}
	path := ls.Path(0, 1, Point{})
	diff(t, Polyline{Pt(0, 0), Pt(1, 0), Pt(2, 0)}, path, approx)
}

func TestTablePredictLen(t *testing.T) {
	tb := mustTable(t, TableSpec{
		Rules: map[rune]string{'X': "X+YF+", 'Y': "-FX-Y"},
		Draw:  "F",
	})
	axiom := tb.Symbols("FX")
	for n := range uint(8) {
		want := New(axiom).IterateN(n).Len()
		if got := PredictLen(axiom, n); got != want {
			t.Errorf("generation %d: predicted %d, want %d", n, got, want)
		}
	}
}

func TestNewTableErrors(t *testing.T) {
	tests := []struct {
		name string
		spec TableSpec
	}{
		{"draw and turn", TableSpec{Draw: "F+"}},
		{"left and right", TableSpec{Draw: "F", Left: "+", Right: "+-"}},
		{"turn rule", TableSpec{Draw: "F", Rules: map[rune]string{'+': "F"}}},
	}
	for _, tt := range tests {
		if _, err := NewTable(tt.spec); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}

	// Turn runes may have an identity rule.
	mustTable(t, TableSpec{Draw: "F", Rules: map[rune]string{'+': "+"}})
}

func TestParseRules(t *testing.T) {
	rules, err := ParseRules([]string{"F = F+F--F+F", "X=X+YF+", "Y="})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, map[rune]string{'F': "F+F--F+F", 'X': "X+YF+", 'Y': ""}, rules)

	for _, bad := range [][]string{
		{"F"},
		{"FF=F"},
		{"=F"},
		{"F=F", "F=FF"},
	} {
		if _, err := ParseRules(bad); err == nil {
			t.Errorf("ParseRules(%q): expected an error", bad)
		}
	}
}
