// Package solverlog provides the structured logger shared by the dpll
// engine and the cmd/gosat CLI. It exists so neither package has to carry
// its own hclog wiring, and so tests can pass hclog.NewNullLogger() without
// pulling in the CLI.
package solverlog

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// New returns a logger named "gosat" writing to stderr at the given
// level. verbose widens the level to Debug so callers can wire a single
// CLI flag straight through.
func New(verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "gosat",
		Level:      level,
		Output:     os.Stderr,
		JSONFormat: false,
	})
}

// Null returns a logger that discards everything, for use as the default
// when a caller doesn't supply one.
func Null() hclog.Logger {
	return hclog.NewNullLogger()
}
