package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/config"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/repository"
	"github.com/alexanderramin/courseplan/internal/scheduler"
)

const outcomeOK = "ok"

type planService struct {
	catalogs CatalogSource
	plans    repository.PlanRepo
	defaults config.PlannerConfig
	recorder PlanRecorder
	observer UseCaseObserver
	now      func() time.Time
}

// NewPlanService builds the planning use case. plans may be nil, in which
// case save requests are rejected. recorder may be nil.
func NewPlanService(
	catalogs CatalogSource,
	plans repository.PlanRepo,
	defaults config.PlannerConfig,
	recorder PlanRecorder,
	observers ...UseCaseObserver,
) PlanService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &planService{
		catalogs: catalogs,
		plans:    plans,
		defaults: defaults,
		recorder: recorder,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *planService) Generate(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error) {
	start := s.now()
	resp, err := s.generate(ctx, req, start)
	elapsed := s.now().Sub(start)

	outcome := outcomeOK
	fields := map[string]any{
		"wishlist_size": len(req.Wishlist),
	}
	if err != nil {
		code, ok := app.PlanErrorCodeOf(err)
		if !ok {
			code = app.PlanErrInternal
		}
		outcome = string(code)
		fields["error_code"] = outcome
	} else {
		fields["plan_id"] = resp.PlanID
		fields["candidates"] = resp.CandidatesConsidered
		fields["total_credits"] = resp.TotalCredits
		fields["stop_reason"] = resp.StopReason
		fields["saved"] = req.Save
	}

	s.recorder.RecordPlan(outcome, resp, elapsed)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "plan.generate",
		Duration:  elapsed,
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
	return resp, err
}

func (s *planService) generate(ctx context.Context, req app.PlanRequest, now time.Time) (*app.PlanResponse, error) {
	in, err := s.resolve(req)
	if err != nil {
		return nil, err
	}
	if req.Save && s.plans == nil {
		return nil, &app.PlanError{Code: app.PlanErrInvalidRequest, Message: "saving plans is not available"}
	}

	catalog, err := s.catalogs.Catalog(ctx)
	if err != nil {
		var ce *domain.CatalogError
		if errors.As(err, &ce) {
			return nil, &app.PlanError{Code: app.PlanErrCatalogInvalid, Message: ce.Error(), Err: err}
		}
		return nil, &app.PlanError{Code: app.PlanErrCatalogUnavailable, Message: "loading catalog failed", Err: err}
	}

	out, err := RunPlanPipeline(ctx, catalog, in)
	if err != nil {
		return nil, classifyPipelineError(err)
	}

	resp := assemblePlanResponse(in, out, now)
	resp.PlanID = ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()

	if req.Save {
		if err := s.save(ctx, req, resp); err != nil {
			return nil, &app.PlanError{Code: app.PlanErrInternal, Message: "saving plan failed", Err: err}
		}
	}
	return resp, nil
}

func classifyPipelineError(err error) error {
	var ce *domain.CatalogError
	switch {
	case errors.As(err, &ce):
		return &app.PlanError{Code: app.PlanErrCatalogInvalid, Message: ce.Error(), Err: err}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &app.PlanError{Code: app.PlanErrSearchCanceled, Message: "candidate search canceled", Err: err}
	default:
		return &app.PlanError{Code: app.PlanErrInternal, Message: err.Error(), Err: err}
	}
}

// resolve applies planner defaults to every omitted field and rejects
// values the pipeline cannot run with.
func (s *planService) resolve(req app.PlanRequest) (PlanInput, error) {
	var cons app.ConstraintsInput
	if req.Constraints != nil {
		cons = *req.Constraints
	}
	var scoring app.ScoringOptions
	if req.Scoring != nil {
		scoring = *req.Scoring
	}

	in := PlanInput{
		Wishlist:  req.Wishlist,
		Completed: req.Completed,
		Constraints: domain.Constraints{
			MinCredits: domain.IntFromPtrWithDefault(s.defaults.MinCredits, cons.MinCredits),
			MaxCredits: domain.IntFromPtrWithDefault(s.defaults.MaxCredits, cons.MaxCredits),
		},
		MaxCandidates: domain.IntFromPtrWithDefault(s.defaults.MaxCandidates, scoring.MaxCandidates),
		MaxNodes:      domain.IntFromPtrWithDefault(s.defaults.MaxNodes, scoring.MaxNodes),
	}

	if in.Constraints.MinCredits < 0 || in.Constraints.MaxCredits < 0 {
		return PlanInput{}, invalidRequest("credit bounds must be non-negative (min %d, max %d)",
			in.Constraints.MinCredits, in.Constraints.MaxCredits)
	}
	if in.MaxCandidates < 0 {
		return PlanInput{}, invalidRequest("maxCandidates must be non-negative, got %d", in.MaxCandidates)
	}
	if in.MaxNodes < 0 {
		return PlanInput{}, invalidRequest("maxNodes must be non-negative, got %d", in.MaxNodes)
	}
	if in.MaxCandidates == 0 {
		in.MaxCandidates = s.defaults.MaxCandidates
	}
	if in.MaxNodes == 0 {
		in.MaxNodes = s.defaults.MaxNodes
	}

	base := scheduler.Weights{
		Credits: s.defaults.Weights.Credits,
		Gaps:    s.defaults.Weights.Gaps,
		Days:    s.defaults.Weights.Days,
		Balance: s.defaults.Weights.Balance,
	}
	var overrides *scheduler.WeightOverrides
	if w := scoring.Weights; w != nil {
		overrides = &scheduler.WeightOverrides{Credits: w.Credits, Gaps: w.Gaps, Days: w.Days, Balance: w.Balance}
	}
	in.Weights = base.Override(overrides)
	for name, v := range map[string]float64{
		"credits": in.Weights.Credits, "gaps": in.Weights.Gaps,
		"days": in.Weights.Days, "balance": in.Weights.Balance,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return PlanInput{}, invalidRequest("weights.%s must be a finite number", name)
		}
	}
	return in, nil
}

func invalidRequest(format string, args ...any) error {
	return &app.PlanError{Code: app.PlanErrInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

func assemblePlanResponse(in PlanInput, out *PlanOutcome, now time.Time) *app.PlanResponse {
	sel := out.Selection
	rejected := out.Eligibility.Rejected
	if rejected == nil {
		rejected = []domain.Rejection{}
	}
	return &app.PlanResponse{
		GeneratedAt:         now,
		Constraints:         in.Constraints,
		SelectedCourseCodes: sel.Candidate.CourseCodes(),
		SelectedSections:    sel.Candidate.SelectedSections(),
		TotalCredits:        sel.Candidate.TotalCredits(),
		Score:               sel.Score.Total,
		ScoreBreakdown: app.ScoreBreakdown{
			Credits: sel.Score.Breakdown.Credits,
			Gaps:    sel.Score.Breakdown.Gaps,
			Days:    sel.Score.Breakdown.Days,
			Balance: sel.Score.Breakdown.Balance,
		},
		ScoreExplanation:     out.ScoreExplanation,
		CandidatesConsidered: sel.Considered,
		Truncated:            out.Generation.Truncated(),
		StopReason:           string(out.Generation.StopReason),
		Explanation:          out.Explanation,
		Rejected:             rejected,
	}
}

func (s *planService) save(ctx context.Context, req app.PlanRequest, resp *app.PlanResponse) error {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	respJSON, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	return s.plans.Create(ctx, &domain.SavedPlan{
		ID:           resp.PlanID,
		CreatedAt:    resp.GeneratedAt,
		TotalCredits: resp.TotalCredits,
		Score:        resp.Score,
		RequestJSON:  string(reqJSON),
		ResponseJSON: string(respJSON),
	})
}
