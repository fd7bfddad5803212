package dpll

import "github.com/rolag/gosat/cnf"

// Propagate enforces literal = true in sys, mutating sys in place:
//
//  1. Every clause containing literal is satisfied and is removed.
//  2. Every clause containing -literal has that literal falsified and is
//     removed from the clause; the reduced clause stays in sys.
//
// It returns the set of literals newly revealed as units by step 2, or
// ok == false if some clause was reduced to empty (a conflict).
//
// Clauses are set-identified by content, so a clause can't be mutated in
// place without invalidating its position in sys — each reduced clause is
// removed, mutated on a private clone, then reinserted. A clause queued
// for reduction may already be gone (e.g. if it also happened to satisfy
// step 1, which cannot occur for a non-tautological clause but is guarded
// against defensively): RemoveClause's bool return makes that a no-op
// rather than a double-process.
func Propagate(sys *cnf.System, literal cnf.Literal) (newUnits []cnf.Literal, ok bool) {
	var toRemove, toReduce []*cnf.Clause
	for _, clause := range sys.Clauses() {
		switch {
		case clause.Contains(literal):
			toRemove = append(toRemove, clause)
		case clause.Contains(literal.Negate()):
			toReduce = append(toReduce, clause)
		}
	}

	for _, clause := range toRemove {
		sys.RemoveClause(clause)
	}

	for _, clause := range toReduce {
		if !sys.RemoveClause(clause) {
			continue
		}
		reduced := clause.Clone()
		reduced.Remove(literal.Negate())

		switch reduced.Len() {
		case 0:
			return nil, false
		case 1:
			unit, _ := reduced.Unit()
			newUnits = append(newUnits, unit)
		}
		sys.AddClause(reduced)
	}

	return newUnits, true
}
