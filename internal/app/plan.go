package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// ConstraintsInput is the credit window as sent by a caller. Each bound that
// is left out falls back to the planner default on its own.
type ConstraintsInput struct {
	MinCredits *int `json:"minCredits,omitempty"`
	MaxCredits *int `json:"maxCredits,omitempty"`
}

type WeightsInput struct {
	Credits *float64 `json:"credits,omitempty"`
	Gaps    *float64 `json:"gaps,omitempty"`
	Days    *float64 `json:"days,omitempty"`
	Balance *float64 `json:"balance,omitempty"`
}

type ScoringOptions struct {
	MaxCandidates *int          `json:"maxCandidates,omitempty"`
	MaxNodes      *int          `json:"maxNodes,omitempty"`
	Weights       *WeightsInput `json:"weights,omitempty"`
}

type PlanRequest struct {
	Wishlist    []string          `json:"wishlist"`
	Completed   []string          `json:"completed"`
	Constraints *ConstraintsInput `json:"constraints,omitempty"`
	Scoring     *ScoringOptions   `json:"scoring,omitempty"`
	Save        bool              `json:"save,omitempty"`
}

func NewPlanRequest(wishlist, completed []string) PlanRequest {
	return PlanRequest{
		Wishlist:  wishlist,
		Completed: completed,
	}
}

type ScoreBreakdown struct {
	Credits float64 `json:"credits"`
	Gaps    float64 `json:"gaps"`
	Days    float64 `json:"days"`
	Balance float64 `json:"balance"`
}

type PlanResponse struct {
	PlanID               string                   `json:"planId,omitempty"`
	GeneratedAt          time.Time                `json:"generatedAt"`
	Constraints          domain.Constraints       `json:"constraints"`
	SelectedCourseCodes  []string                 `json:"selectedCourseCodes"`
	SelectedSections     []domain.SelectedSection `json:"selectedSections"`
	TotalCredits         int                      `json:"totalCredits"`
	Score                float64                  `json:"score"`
	ScoreBreakdown       ScoreBreakdown           `json:"scoreBreakdown"`
	ScoreExplanation     []string                 `json:"scoreExplanation"`
	CandidatesConsidered int                      `json:"candidatesConsidered"`
	Truncated            bool                     `json:"truncated"`
	StopReason           string                   `json:"stopReason"`
	Explanation          []string                 `json:"explanation"`
	Rejected             []domain.Rejection       `json:"rejected"`
}

// DecodeSavedPlan restores the request and response payloads of a stored plan.
func DecodeSavedPlan(p *domain.SavedPlan) (*PlanRequest, *PlanResponse, error) {
	var req PlanRequest
	if err := json.Unmarshal([]byte(p.RequestJSON), &req); err != nil {
		return nil, nil, fmt.Errorf("decoding plan %s request: %w", p.ID, err)
	}
	var resp PlanResponse
	if err := json.Unmarshal([]byte(p.ResponseJSON), &resp); err != nil {
		return nil, nil, fmt.Errorf("decoding plan %s response: %w", p.ID, err)
	}
	return &req, &resp, nil
}

type PlanErrorCode string

const (
	PlanErrCatalogInvalid     PlanErrorCode = "CATALOG_INVALID"
	PlanErrCatalogUnavailable PlanErrorCode = "CATALOG_UNAVAILABLE"
	PlanErrInvalidRequest     PlanErrorCode = "INVALID_REQUEST"
	PlanErrSearchCanceled     PlanErrorCode = "SEARCH_CANCELED"
	PlanErrInternal           PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

// PlanErrorCodeOf returns the code of the first PlanError in err's chain.
func PlanErrorCodeOf(err error) (PlanErrorCode, bool) {
	var pe *PlanError
	if errors.As(err, &pe) {
		return pe.Code, true
	}
	return "", false
}
