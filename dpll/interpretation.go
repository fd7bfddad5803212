package dpll

import (
	"sort"

	"github.com/rolag/gosat/cnf"
)

// Interpretation is the set of literals a satisfying search accumulated:
// at most one of {v, -v} is present for any variable v when returned from
// a Satisfiable search.
type Interpretation map[cnf.Literal]struct{}

func newInterpretation() Interpretation {
	return make(Interpretation)
}

// add inserts lit into the interpretation.
func (i Interpretation) add(lit cnf.Literal) {
	i[lit] = struct{}{}
}

// union returns a new interpretation containing the literals of both
// receivers. Neither input is mutated.
func (i Interpretation) union(other Interpretation) Interpretation {
	out := make(Interpretation, len(i)+len(other))
	for l := range i {
		out[l] = struct{}{}
	}
	for l := range other {
		out[l] = struct{}{}
	}
	return out
}

// Sorted returns the interpretation's literals in ascending order by
// signed value, suitable for deterministic, reproducible output.
func (i Interpretation) Sorted() []cnf.Literal {
	out := make([]cnf.Literal, 0, len(i))
	for l := range i {
		out = append(out, l)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}
