// Package cnf implements the value-typed clause/system data model that the
// DPLL engine searches over: clauses are sets of signed-integer literals,
// and a system is a set of clauses. Equality throughout is by content, not
// identity, so two clauses built from the same literals in any order
// compare and hash equal.
package cnf

import "strconv"

// Literal is a nonzero signed integer naming a propositional variable
// (its absolute value) and a polarity (its sign: positive means the
// variable is asserted true, negative means false).
//
// Zero is reserved as the DIMACS clause terminator and must never be
// stored as a Literal; Clause.Add panics if asked to.
type Literal int

// Var returns the propositional variable this literal names, independent
// of polarity.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Negated reports whether the literal asserts its variable false.
func (l Literal) Negated() bool {
	return l < 0
}

// Negate returns the complementary literal (¬l).
func (l Literal) Negate() Literal {
	return -l
}

func (l Literal) String() string {
	return strconv.Itoa(int(l))
}
