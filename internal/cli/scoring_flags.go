package cli

import (
	"github.com/spf13/pflag"

	"github.com/alexanderramin/courseplan/internal/app"
)

// scoringFlags binds the search ceilings and score weights. Only flags the
// user actually set end up in the request, so the planner defaults apply to
// everything else.
type scoringFlags struct {
	maxCandidates int
	maxNodes      int
	credits       float64
	gaps          float64
	days          float64
	balance       float64
}

func (s *scoringFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&s.maxCandidates, "max-candidates", 0, "Stop the search after this many candidates (0 = configured default)")
	fs.IntVar(&s.maxNodes, "max-nodes", 0, "Stop the search after visiting this many nodes (0 = configured default)")
	fs.Float64Var(&s.credits, "weight-credits", 0, "Reward per credit above the minimum")
	fs.Float64Var(&s.gaps, "weight-gaps", 0, "Penalty per idle minute between meetings")
	fs.Float64Var(&s.days, "weight-days", 0, "Penalty per distinct meeting day")
	fs.Float64Var(&s.balance, "weight-balance", 0, "Penalty per minute of daily-load standard deviation")
}

// options returns nil when no scoring flag was set.
func (s *scoringFlags) options(fs *pflag.FlagSet) *app.ScoringOptions {
	opts := &app.ScoringOptions{}
	set := false
	if fs.Changed("max-candidates") {
		opts.MaxCandidates = intPtr(s.maxCandidates)
		set = true
	}
	if fs.Changed("max-nodes") {
		opts.MaxNodes = intPtr(s.maxNodes)
		set = true
	}

	w := &app.WeightsInput{}
	weightSet := false
	for name, dst := range map[string]struct {
		val float64
		ptr **float64
	}{
		"weight-credits": {s.credits, &w.Credits},
		"weight-gaps":    {s.gaps, &w.Gaps},
		"weight-days":    {s.days, &w.Days},
		"weight-balance": {s.balance, &w.Balance},
	} {
		if fs.Changed(name) {
			v := dst.val
			*dst.ptr = &v
			weightSet = true
		}
	}
	if weightSet {
		opts.Weights = w
		set = true
	}

	if !set {
		return nil
	}
	return opts
}

func intPtr(v int) *int { return &v }
