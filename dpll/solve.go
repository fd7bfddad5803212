// Package dpll implements the Davis–Putnam–Logemann–Loveland search
// procedure over a cnf.System, parallelised across the two branches of
// each decision: unit propagation to quiescence, then a branching
// decision forked into two independent subsearches, combined as "the
// first satisfying branch wins, otherwise both must fail."
package dpll

import (
	"context"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/rolag/gosat/cnf"
)

// Solve decides the satisfiability of sys given the literals in units
// already asserted true. sys is owned by this call: Solve mutates it
// freely and the caller must not use sys concurrently or rely on its
// contents afterward.
//
// units should be exactly the unit clauses already present in sys (the
// dimacs package's parse result supplies these); Solve does not rescan
// sys for units it wasn't told about — the caller already paid for that
// scan once while parsing.
//
// Solve never returns Tautology — see Verdict.Tautology's doc comment.
func Solve(ctx context.Context, sys *cnf.System, units []cnf.Literal, opts Options) (Verdict, Interpretation) {
	opts = opts.withDefaults()
	if sys.IsEmpty() {
		return Satisfiable, newInterpretation()
	}
	verdict, interp := solve(ctx, sys, units, opts.ThreadBudget, opts.Logger)
	if verdict == verdictUnknown {
		panic("dpll: Solve reached the verdictUnknown sentinel")
	}
	return verdict, interp
}

func solve(ctx context.Context, sys *cnf.System, units []cnf.Literal, budget int, logger hclog.Logger) (Verdict, Interpretation) {
	interp := newInterpretation()

	current := dedupe(units)
	for len(current) > 0 {
		revealed := make(map[cnf.Literal]struct{})
		for _, lit := range sortedLiterals(current) {
			newUnits, ok := Propagate(sys, lit)
			if !ok {
				logger.Debug("conflict during propagation", "literal", lit)
				return Unsatisfiable, nil
			}
			interp.add(lit)
			for _, u := range newUnits {
				revealed[u] = struct{}{}
			}
			if sys.IsEmpty() {
				return Satisfiable, interp
			}
		}
		current = revealed
	}

	if ctx.Err() != nil {
		// A sibling branch already settled the enclosing decision;
		// this subtree's result will be discarded. Stop promptly
		// instead of continuing to search.
		return Unsatisfiable, nil
	}

	decisionLit := firstLiteralOfFirstClause(sys)
	logger.Debug("decision", "literal", decisionLit, "clauses", sys.Len(), "budget", budget)

	negSys := sys.Clone()
	posUnits := []cnf.Literal{decisionLit}
	negUnits := []cnf.Literal{decisionLit.Negate()}
	childBudget := budget - 2

	if budget > 1 {
		return solveParallel(ctx, interp, decisionLit, sys, posUnits, negSys, negUnits, childBudget, logger)
	}
	return solveSequential(ctx, interp, decisionLit, sys, posUnits, negSys, negUnits, childBudget, logger)
}

func solveSequential(ctx context.Context, interp Interpretation, decisionLit cnf.Literal,
	posSys *cnf.System, posUnits []cnf.Literal, negSys *cnf.System, negUnits []cnf.Literal,
	childBudget int, logger hclog.Logger) (Verdict, Interpretation) {

	if v, i := solve(ctx, posSys, posUnits, childBudget, logger); v == Satisfiable {
		return Satisfiable, interp.union(i)
	}
	if v, i := solve(ctx, negSys, negUnits, childBudget, logger); v == Satisfiable {
		return Satisfiable, interp.union(i)
	}
	return Unsatisfiable, nil
}

type branchOutcome struct {
	verdict Verdict
	interp  Interpretation
}

func solveParallel(ctx context.Context, interp Interpretation, decisionLit cnf.Literal,
	posSys *cnf.System, posUnits []cnf.Literal, negSys *cnf.System, negUnits []cnf.Literal,
	childBudget int, logger hclog.Logger) (Verdict, Interpretation) {

	branchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so neither goroutine blocks on send if the caller stops
	// reading after the first Satisfiable result — both branches run to
	// completion or cancellation, but never leak on an unread channel.
	results := make(chan branchOutcome, 2)

	go func() {
		v, i := solve(branchCtx, posSys, posUnits, childBudget, logger)
		results <- branchOutcome{v, i}
	}()
	go func() {
		v, i := solve(branchCtx, negSys, negUnits, childBudget, logger)
		results <- branchOutcome{v, i}
	}()

	first := <-results
	if first.verdict == Satisfiable {
		cancel()
		return Satisfiable, interp.union(first.interp)
	}

	second := <-results
	if second.verdict == Satisfiable {
		return Satisfiable, interp.union(second.interp)
	}
	return Unsatisfiable, nil
}

// firstLiteralOfFirstClause picks the decision literal deterministically:
// the first literal, by canonical literal ordering, of the first clause,
// by System.Clauses' canonical ordering. Two solves over the same input
// always branch identically, which is what makes the engine's output
// reproducible and testable.
func firstLiteralOfFirstClause(sys *cnf.System) cnf.Literal {
	clauses := sys.Clauses()
	return clauses[0].Literals()[0]
}

func dedupe(lits []cnf.Literal) map[cnf.Literal]struct{} {
	out := make(map[cnf.Literal]struct{}, len(lits))
	for _, l := range lits {
		out[l] = struct{}{}
	}
	return out
}

func sortedLiterals(set map[cnf.Literal]struct{}) []cnf.Literal {
	out := make([]cnf.Literal, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
