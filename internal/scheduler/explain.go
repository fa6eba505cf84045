package scheduler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/courseplan/internal/domain"
)

const noneLabel = "(none)"

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return noneLabel
	}
	return strings.Join(items, ", ")
}

type ExplanationInput struct {
	Wishlist    []string
	Completed   []string
	Eligibility Eligibility
	Selected    domain.Candidate
	Constraints domain.Constraints
}

// BuildExplanation renders the fixed-order summary of how a plan was reached.
func BuildExplanation(in ExplanationInput) []string {
	picked := make([]string, 0, len(in.Selected.Picks))
	for _, p := range in.Selected.Picks {
		picked = append(picked, p.Course.Code+":"+p.Section.ID)
	}
	total := in.Selected.TotalCredits()
	minC, maxC := in.Constraints.MinCredits, in.Constraints.MaxCredits

	lines := []string{
		"Wishlist: " + joinOrNone(in.Wishlist),
		"Completed: " + joinOrNone(in.Completed),
		"Eligible after prereq checks: " + joinOrNone(Codes(in.Eligibility.PrereqEligible)),
		"Eligible with sections: " + joinOrNone(Codes(in.Eligibility.Eligible)),
		"Picked sections (conflict-free): " + joinOrNone(picked),
		fmt.Sprintf("Total credits: %d (target %d-%d)", total, minC, maxC),
	}
	if total < minC {
		lines = append(lines, fmt.Sprintf(
			"Note: Could not reach minCredits=%d with conflict-free sections under maxCredits=%d.", minC, maxC))
	}
	return lines
}

// FormatScore renders a score value with two decimals.
func FormatScore(x float64) string {
	if x == 0 {
		x = 0
	}
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// BuildScoreExplanation summarizes the scoring pass for the winning selection.
func BuildScoreExplanation(sel Selection, gen GenerateResult) []string {
	var lines []string
	if sel.Considered == 0 {
		lines = append(lines, "No candidates to score.")
	} else {
		bd := sel.Score.Breakdown
		lines = append(lines,
			fmt.Sprintf("Scoring considered %d candidate schedule(s).", sel.Considered),
			fmt.Sprintf("Score total = %s.", FormatScore(sel.Score.Total)),
			fmt.Sprintf("Breakdown: credits=%s, gaps=%s, days=%s, balance=%s.",
				FormatScore(bd.Credits), FormatScore(bd.Gaps), FormatScore(bd.Days), FormatScore(bd.Balance)),
		)
	}
	if gen.Truncated() {
		lines = append(lines, fmt.Sprintf(
			"Search stopped early (%s) after %d candidate(s); result is best among those enumerated.",
			gen.StopReason, len(gen.Candidates)))
	}
	return lines
}
