package service

import (
	"context"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/scheduler"
)

// PlanInput is a fully resolved plan request: every default has been applied.
type PlanInput struct {
	Wishlist      []string
	Completed     []string
	Constraints   domain.Constraints
	Weights       scheduler.Weights
	MaxCandidates int
	MaxNodes      int
}

// PlanOutcome carries every intermediate result of one pipeline run.
type PlanOutcome struct {
	Eligibility      scheduler.Eligibility
	Generation       scheduler.GenerateResult
	Selection        scheduler.Selection
	Explanation      []string
	ScoreExplanation []string
}

// RunPlanPipeline filters the wishlist, enumerates candidates, selects the
// best one and renders both explanations. It has no side effects.
func RunPlanPipeline(ctx context.Context, catalog *domain.Catalog, in PlanInput) (*PlanOutcome, error) {
	elig := scheduler.FilterEligible(in.Wishlist, in.Completed, catalog)

	gen, err := scheduler.GenerateCandidates(ctx, elig.Eligible, scheduler.GenerateOptions{
		MaxCredits:    in.Constraints.MaxCredits,
		MaxCandidates: in.MaxCandidates,
		MaxNodes:      in.MaxNodes,
	})
	if err != nil {
		return nil, err
	}

	sel := scheduler.SelectBest(gen.Candidates, in.Constraints.MinCredits, in.Weights)

	return &PlanOutcome{
		Eligibility: elig,
		Generation:  gen,
		Selection:   sel,
		Explanation: scheduler.BuildExplanation(scheduler.ExplanationInput{
			Wishlist:    in.Wishlist,
			Completed:   in.Completed,
			Eligibility: elig,
			Selected:    sel.Candidate,
			Constraints: in.Constraints,
		}),
		ScoreExplanation: scheduler.BuildScoreExplanation(sel, gen),
	}, nil
}
