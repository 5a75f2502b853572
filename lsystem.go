package lcurve

import (
	"iter"
	"math"
	"slices"
)

// LSystem holds one generation of a Lindenmayer system over the alphabet S.
//
// LSystem values are immutable: Iterate and IterateN return a new value and
// leave the receiver untouched. The zero value is an empty system.
type LSystem[S Symbol[S]] struct {
	symbols    []S
	generation uint
}

// New returns the system whose working sequence is a copy of axiom.
func New[S Symbol[S]](axiom []S) LSystem[S] {
	return LSystem[S]{symbols: slices.Clone(axiom)}
}

// Len returns the number of symbols in the working sequence.
func (ls LSystem[S]) Len() int {
	return len(ls.symbols)
}

// Generation returns how many times the axiom has been expanded.
func (ls LSystem[S]) Generation() uint {
	return ls.generation
}

// All returns an iterator over the working sequence, in order.
func (ls LSystem[S]) All() iter.Seq[S] {
	return slices.Values(ls.symbols)
}

// Symbols returns a copy of the working sequence.
func (ls LSystem[S]) Symbols() []S {
	return slices.Clone(ls.symbols)
}

// Iterate expands every symbol by its production rule. The replacements are
// concatenated in the order of the symbols they replace.
func (ls LSystem[S]) Iterate() LSystem[S] {
	// Size the output first, then copy productions into it. Productions
	// are fixed tables, so asking twice is cheap.
	n := 0
	for _, s := range ls.symbols {
		n += len(s.Produce())
	}
	out := make([]S, 0, n)
	for _, s := range ls.symbols {
		out = append(out, s.Produce()...)
	}

	Logger().Debug("expanded generation",
		"generation", ls.generation+1,
		"from", len(ls.symbols),
		"to", len(out))
	return LSystem[S]{symbols: out, generation: ls.generation + 1}
}

// IterateN applies Iterate n times. Each generation is materialized once and
// the previous one released. IterateN(0) returns the receiver unchanged.
//
// Sequence length grows exponentially in n; bounding n is the caller's
// responsibility. See [PredictLen].
func (ls LSystem[S]) IterateN(n uint) LSystem[S] {
	for range n {
		ls = ls.Iterate()
	}
	return ls
}

// PredictLen returns the length of the working sequence after n expansions of
// axiom, without performing them. Results that do not fit in an int saturate
// at math.MaxInt.
func PredictLen[S interface {
	Symbol[S]
	comparable
}](axiom []S, n uint) int {
	// Collect the alphabet reachable from the axiom.
	var alphabet []S
	seen := make(map[S]bool)
	queue := slices.Clone(axiom)
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if seen[s] {
			continue
		}
		seen[s] = true
		alphabet = append(alphabet, s)
		queue = append(queue, s.Produce()...)
	}

	// lengths[s] is the length s expands to after k generations.
	lengths := make(map[S]int, len(alphabet))
	for _, s := range alphabet {
		lengths[s] = 1
	}
	next := make(map[S]int, len(alphabet))
	for range n {
		for _, s := range alphabet {
			total := 0
			for _, c := range s.Produce() {
				total = addSat(total, lengths[c])
			}
			next[s] = total
		}
		lengths, next = next, lengths
	}

	total := 0
	for _, s := range axiom {
		total = addSat(total, lengths[s])
	}
	return total
}

func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
