// Package dimacs adapts the DIMACS CNF text format into the cnf package's
// data model, so cmd/gosat has something to read input with.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rolag/gosat/cnf"
)

// ParseResult is everything Solve needs from a parsed DIMACS document.
type ParseResult struct {
	// System contains every non-tautological clause found in the input.
	System *cnf.System
	// Units holds the literals of System's unit clauses, discovered
	// during the same pass that built System.
	Units []cnf.Literal
	// Tautology is true if at least one non-comment, non-header line
	// described a tautological clause (both +v and -v on the same
	// line). Such clauses are dropped from System entirely.
	Tautology bool
}

// Parse reads a DIMACS CNF document from r. Comment lines (first token
// starting with 'c') and the header line (first token starting with 'p')
// are skipped; the header's variable/clause counts are advisory only and
// are never validated against the parsed content. Every other non-blank
// line is a whitespace-separated list of signed integers terminated by a
// trailing 0.
//
// A non-integer token is reported as an error rather than silently
// skipped, so cmd/gosat can turn it into its "bad usage" exit path.
func Parse(r io.Reader) (*ParseResult, error) {
	result := &ParseResult{System: cnf.NewSystem()}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		switch words[0][0] {
		case 'c', 'p':
			continue
		}

		clause, err := parseClauseLine(words)
		if err != nil {
			return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
		}
		if clause == nil {
			// some literal on the line appeared with its negation:
			// the clause is a tautology and is dropped.
			result.Tautology = true
			continue
		}
		if clause.IsEmpty() {
			continue
		}
		if unit, ok := clause.Unit(); ok {
			result.Units = append(result.Units, unit)
		}
		result.System.AddClause(clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}

	return result, nil
}

// parseClauseLine parses one non-comment, non-header DIMACS line into a
// clause. It returns (nil, nil) if the line is a tautology (some literal
// and its negation both appear before the terminating 0).
func parseClauseLine(words []string) (*cnf.Clause, error) {
	clause := cnf.NewClause()
	for _, word := range words {
		n, err := strconv.Atoi(word)
		if err != nil {
			return nil, fmt.Errorf("not a valid integer literal: %q", word)
		}
		if n == 0 {
			break
		}
		lit := cnf.Literal(n)
		if clause.Contains(lit.Negate()) {
			return nil, nil
		}
		clause.Add(lit)
	}
	return clause, nil
}
