// Command gosat decides the satisfiability of a DIMACS CNF formula using
// a concurrent DPLL search, printing one of TAUTOLOGY, SATISFIABLE (with
// a satisfying interpretation), or UNSATISFIABLE.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/rolag/gosat/dimacs"
	"github.com/rolag/gosat/dpll"
	"github.com/rolag/gosat/internal/solverlog"
)

const (
	exitOK          = 0
	exitBadUsage    = 22
	exitUnavailable = 38
)

type cliArgs struct {
	File    string `arg:"-f,--file" help:"read the CNF system from FILE ('-' or omitted reads stdin)"`
	Verbose bool   `arg:"-V,--verbose" help:"log propagation and decision statistics to stderr"`
	Threads int    `arg:"-t,--threads" default:"16" help:"initial thread budget for parallel decisions"`
}

func (cliArgs) Version() string {
	return "gosat (Go reimplementation of ruSAT), 0.1.0"
}

func (cliArgs) Description() string {
	return "Decide the satisfiability of a DIMACS CNF formula via parallel DPLL."
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var args cliArgs
	parser, err := arg.NewParser(arg.Config{}, &args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitBadUsage
	}
	if err := parser.Parse(argv); err != nil {
		switch err {
		case arg.ErrHelp:
			parser.WriteHelp(stdout)
			return exitOK
		case arg.ErrVersion:
			fmt.Fprintln(stdout, args.Version())
			return exitOK
		default:
			fmt.Fprintln(stderr, err)
			parser.WriteUsage(stderr)
			return exitBadUsage
		}
	}

	input, closeInput, err := openInput(args.File, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "gosat: %v\n", err)
		return exitBadUsage
	}
	defer closeInput()

	parsed, err := dimacs.Parse(input)
	if err != nil {
		fmt.Fprintf(stderr, "gosat: %v\n", err)
		return exitBadUsage
	}

	if parsed.System.IsEmpty() {
		if parsed.Tautology {
			fmt.Fprintln(stdout, dpll.Tautology)
			return exitOK
		}
		fmt.Fprintln(stderr, "gosat: you need to enter a system")
		return exitBadUsage
	}

	logger := solverlog.New(args.Verbose)
	opts := dpll.Options{ThreadBudget: args.Threads, Logger: logger}
	verdict, interpretation := dpll.Solve(context.Background(), parsed.System, parsed.Units, opts)

	switch verdict {
	case dpll.Satisfiable:
		fmt.Fprintf(stdout, "%s: %s\n", verdict, formatInterpretation(interpretation))
	default:
		fmt.Fprintln(stdout, verdict)
	}
	return exitOK
}

func openInput(file string, stdin io.Reader) (io.Reader, func(), error) {
	if file == "" || file == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open %s: %w", file, err)
	}
	return f, func() { f.Close() }, nil
}

func formatInterpretation(interp dpll.Interpretation) string {
	lits := interp.Sorted()
	out := ""
	for i, l := range lits {
		if i > 0 {
			out += " "
		}
		out += l.String()
	}
	return out
}
