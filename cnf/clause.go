package cnf

import (
	"fmt"
	"sort"
	"strings"
)

// ErrZeroLiteral is the panic payload raised when code attempts to store
// the literal 0. Zero terminates a DIMACS clause and is never a valid
// propositional variable; storing it is a programmer error, not a
// recoverable condition.
type ErrZeroLiteral struct {
	Op string
}

func (e *ErrZeroLiteral) Error() string {
	return fmt.Sprintf("cnf: %s: literal 0 is never valid", e.Op)
}

// Clause is a disjunction (OR) of literals, represented as a set: adding
// the same literal twice is a no-op, and iteration order is irrelevant to
// equality. Two clauses with the same literals — in any insertion order —
// compare and hash equal via Key.
type Clause struct {
	literals map[Literal]struct{}
}

// NewClause builds a clause from zero or more literals. Duplicate
// literals collapse; a literal of 0 panics (see ErrZeroLiteral).
func NewClause(literals ...Literal) *Clause {
	c := &Clause{literals: make(map[Literal]struct{}, len(literals))}
	for _, l := range literals {
		c.Add(l)
	}
	return c
}

// Add inserts a literal into the clause, returning whether it was newly
// added. Panics if literal == 0.
func (c *Clause) Add(literal Literal) bool {
	if literal == 0 {
		panic(&ErrZeroLiteral{Op: "Clause.Add"})
	}
	if _, exists := c.literals[literal]; exists {
		return false
	}
	c.literals[literal] = struct{}{}
	return true
}

// Remove deletes a literal from the clause, returning whether it was
// present.
func (c *Clause) Remove(literal Literal) bool {
	if _, exists := c.literals[literal]; !exists {
		return false
	}
	delete(c.literals, literal)
	return true
}

// Contains reports whether literal is a member of the clause.
func (c *Clause) Contains(literal Literal) bool {
	_, exists := c.literals[literal]
	return exists
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

// IsEmpty reports whether the clause has no literals. An empty clause is
// unsatisfiable.
func (c *Clause) IsEmpty() bool {
	return len(c.literals) == 0
}

// Unit returns the clause's sole literal and true if the clause has
// exactly one literal, or the zero Literal and false otherwise.
func (c *Clause) Unit() (Literal, bool) {
	if len(c.literals) != 1 {
		return 0, false
	}
	for l := range c.literals {
		return l, true
	}
	panic("unreachable")
}

// IsTautology reports whether the clause contains both a literal and its
// negation, for some variable — such a clause is always true.
func (c *Clause) IsTautology() bool {
	for l := range c.literals {
		if _, ok := c.literals[-l]; ok {
			return true
		}
	}
	return false
}

// Literals returns the clause's literals in canonical (ascending) order.
// The ordering is deterministic so that "some arbitrary literal" picks in
// the DPLL engine are reproducible across runs and tests.
func (c *Clause) Literals() []Literal {
	out := make([]Literal, 0, len(c.literals))
	for l := range c.literals {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns a deep copy of the clause. Clones never share underlying
// storage, so mutating one never affects the other.
func (c *Clause) Clone() *Clause {
	clone := &Clause{literals: make(map[Literal]struct{}, len(c.literals))}
	for l := range c.literals {
		clone.literals[l] = struct{}{}
	}
	return clone
}

// Key returns a canonical string identifying the clause's content —
// clauses with the same literal set produce the same key regardless of
// insertion order, making Key suitable as a map key for set-semantics
// storage in System.
func (c *Clause) Key() string {
	lits := c.Literals()
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, ",")
}

// Equal reports whether two clauses contain exactly the same literals.
func (c *Clause) Equal(other *Clause) bool {
	if other == nil {
		return false
	}
	if len(c.literals) != len(other.literals) {
		return false
	}
	for l := range c.literals {
		if _, ok := other.literals[l]; !ok {
			return false
		}
	}
	return true
}

func (c *Clause) String() string {
	lits := c.Literals()
	if len(lits) == 0 {
		return "⊥"
	}
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " ∨ ") + ")"
}
