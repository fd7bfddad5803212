package dpll

import (
	"github.com/hashicorp/go-hclog"
	"github.com/rolag/gosat/internal/solverlog"
)

// DefaultThreadBudget is the initial decision-fork budget a caller should
// pass when it has no more specific policy; the CLI uses this as its
// own default.
const DefaultThreadBudget = 16

// Options configures a Solve call.
type Options struct {
	// ThreadBudget bounds how many decisions may fork into parallel
	// goroutines before the search falls back to sequential recursion.
	// Each parallel fork consumes two units of budget; descendants
	// inherit budget-2. A budget <= 1 forces fully sequential search.
	// The zero value is replaced with DefaultThreadBudget; pass a
	// negative value to force sequential search from the start.
	ThreadBudget int

	// Logger receives one Debug line per decision and per detected
	// conflict. A nil Logger is replaced with a no-op logger.
	Logger hclog.Logger
}

func (o Options) withDefaults() Options {
	if o.ThreadBudget == 0 {
		o.ThreadBudget = DefaultThreadBudget
	}
	if o.Logger == nil {
		o.Logger = solverlog.Null()
	}
	return o
}
