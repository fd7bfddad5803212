package cnf

import "sort"

// System is a conjunction (AND) of clauses, held as a set keyed on clause
// content: adding a clause whose literals already match an existing
// member is a no-op, and clause order is never observable. Zero clauses
// is the empty conjunction — trivially satisfiable.
type System struct {
	clauses map[string]*Clause
}

// NewSystem builds an empty system.
func NewSystem() *System {
	return &System{clauses: make(map[string]*Clause)}
}

// AddClause inserts clause into the system, returning whether it was
// newly added (false if an equal clause was already present).
func (s *System) AddClause(clause *Clause) bool {
	key := clause.Key()
	if _, exists := s.clauses[key]; exists {
		return false
	}
	s.clauses[key] = clause
	return true
}

// RemoveClause deletes the clause matching other's content, returning
// whether a matching clause was present.
func (s *System) RemoveClause(other *Clause) bool {
	key := other.Key()
	if _, exists := s.clauses[key]; !exists {
		return false
	}
	delete(s.clauses, key)
	return true
}

// Contains reports whether a clause with the same content as other is a
// member of the system.
func (s *System) Contains(other *Clause) bool {
	_, exists := s.clauses[other.Key()]
	return exists
}

// Len returns the number of clauses in the system.
func (s *System) Len() int {
	return len(s.clauses)
}

// IsEmpty reports whether the system has no clauses — the trivially
// satisfiable empty conjunction.
func (s *System) IsEmpty() bool {
	return len(s.clauses) == 0
}

// Clauses returns the system's clauses in an order determined by the
// underlying map's key ordering (lexicographic over canonical clause
// keys), which is stable across calls on the same System value so that
// "the first clause" is reproducible for a fixed set of clause contents.
func (s *System) Clauses() []*Clause {
	keys := make([]string, 0, len(s.clauses))
	for k := range s.clauses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*Clause, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.clauses[k])
	}
	return out
}

// TakeUnitClause finds any unit clause, removes it from the system, and
// returns its sole literal. It is a faster alternative to scanning
// Clauses() and calling RemoveClause separately; not required for
// correctness, just a cheaper path when a caller only needs one unit.
func (s *System) TakeUnitClause() (Literal, bool) {
	for k, c := range s.clauses {
		if l, ok := c.Unit(); ok {
			delete(s.clauses, k)
			return l, true
		}
	}
	return 0, false
}

// Clone returns a deep copy of the system: clause storage is not shared
// between the original and the clone, so mutating one's clauses via
// propagation never affects the other. This is what lets each concurrent
// DPLL branch own an independent working copy.
func (s *System) Clone() *System {
	clone := &System{clauses: make(map[string]*Clause, len(s.clauses))}
	for k, c := range s.clauses {
		clone.clauses[k] = c.Clone()
	}
	return clone
}
