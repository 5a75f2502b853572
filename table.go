package lcurve

import (
	"strings"

	"github.com/pkg/errors"
)

// Table is an alphabet defined by data rather than by a Go type: any rune is
// a symbol, rules map runes to replacement strings, and three rune sets say
// which symbols draw and which turn. Runes without a rule are terminals.
//
// Tables allow curves to be described in configuration files. The built-in
// alphabets such as [Koch] are faster and should be preferred.
type Table struct {
	rules map[rune][]Rune
	draw  map[rune]bool
	left  map[rune]bool
	right map[rune]bool
}

// TableSpec describes a [Table].
type TableSpec struct {
	// Rules maps a rune to the string that replaces it.
	Rules map[rune]string
	// Draw lists the runes that move forward and draw.
	Draw string
	// Left lists the runes that add the turn step. Defaults to "+".
	Left string
	// Right lists the runes that subtract the turn step. Defaults to "-".
	Right string
}

// NewTable compiles spec. It fails if a rune is in more than one of the
// draw, left and right sets, or if a turn rune has a rule other than the
// identity.
func NewTable(spec TableSpec) (*Table, error) {
	if spec.Left == "" {
		spec.Left = "+"
	}
	if spec.Right == "" {
		spec.Right = "-"
	}
	tb := &Table{
		rules: make(map[rune][]Rune, len(spec.Rules)),
		draw:  runeSet(spec.Draw),
		left:  runeSet(spec.Left),
		right: runeSet(spec.Right),
	}
	for r := range tb.draw {
		if tb.left[r] || tb.right[r] {
			return nil, errors.Errorf("rune %q both draws and turns", r)
		}
	}
	for r := range tb.left {
		if tb.right[r] {
			return nil, errors.Errorf("rune %q turns both left and right", r)
		}
	}
	for r, repl := range spec.Rules {
		if (tb.left[r] || tb.right[r]) && repl != string(r) {
			return nil, errors.Errorf("turn rune %q must expand to itself, not %q", r, repl)
		}
		tb.rules[r] = tb.Symbols(repl)
	}
	return tb, nil
}

func runeSet(s string) map[rune]bool {
	m := make(map[rune]bool, len(s))
	for _, r := range s {
		m[r] = true
	}
	return m
}

// Symbols converts s into symbols of the table.
func (tb *Table) Symbols(s string) []Rune {
	out := make([]Rune, 0, len(s))
	for _, r := range s {
		out = append(out, Rune{r, tb})
	}
	return out
}

// Rune is one symbol of a [Table].
type Rune struct {
	r     rune
	table *Table
}

func (r Rune) Rune() rune { return r.r }

func (r Rune) Produce() []Rune {
	if repl, ok := r.table.rules[r.r]; ok {
		return repl
	}
	return []Rune{r}
}

func (r Rune) Interpret(t *Turtle) (Point, bool) {
	switch {
	case r.table.draw[r.r]:
		return t.Forward(), true
	case r.table.left[r.r]:
		t.Left()
	case r.table.right[r.r]:
		t.Right()
	}
	return Point{}, false
}

func (r Rune) String() string { return string(r.r) }

// ParseRules parses rules written as "F=F+F--F+F", one per element.
func ParseRules(lines []string) (map[rune]string, error) {
	rules := make(map[rune]string, len(lines))
	for _, line := range lines {
		lhs, rhs, ok := strings.Cut(line, "=")
		if !ok {
			return nil, errors.Errorf("rule %q: missing '='", line)
		}
		lhs = strings.TrimSpace(lhs)
		if n := len([]rune(lhs)); n != 1 {
			return nil, errors.Errorf("rule %q: left side must be a single symbol", line)
		}
		r := []rune(lhs)[0]
		if _, dup := rules[r]; dup {
			return nil, errors.Errorf("rule %q: duplicate rule for %q", line, r)
		}
		rules[r] = strings.TrimSpace(rhs)
	}
	return rules, nil
}
