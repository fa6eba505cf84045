package config

import (
	"fmt"
	"math"
)

type WeightsConfig struct {
	Credits float64 `json:"credits"`
	Gaps    float64 `json:"gaps"`
	Days    float64 `json:"days"`
	Balance float64 `json:"balance"`
}

// PlannerConfig holds request defaults and search ceilings.
type PlannerConfig struct {
	MinCredits    int           `json:"min_credits"`
	MaxCredits    int           `json:"max_credits"`
	MaxCandidates int           `json:"max_candidates"`
	MaxNodes      int           `json:"max_nodes"`
	Weights       WeightsConfig `json:"weights"`
}

func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		MinCredits:    12,
		MaxCredits:    16,
		MaxCandidates: 200,
		MaxNodes:      1_000_000,
		Weights:       WeightsConfig{Credits: 3, Gaps: 0.02, Days: 5, Balance: 0.05},
	}
}

func (c PlannerConfig) Validate() error {
	if c.MinCredits < 0 {
		return fmt.Errorf("min_credits must be non-negative, got %d", c.MinCredits)
	}
	if c.MaxCredits < c.MinCredits {
		return fmt.Errorf("max_credits (%d) must be >= min_credits (%d)", c.MaxCredits, c.MinCredits)
	}
	if c.MaxCandidates <= 0 {
		return fmt.Errorf("max_candidates must be positive, got %d", c.MaxCandidates)
	}
	if c.MaxNodes <= 0 {
		return fmt.Errorf("max_nodes must be positive, got %d", c.MaxNodes)
	}
	for name, w := range map[string]float64{
		"credits": c.Weights.Credits, "gaps": c.Weights.Gaps,
		"days": c.Weights.Days, "balance": c.Weights.Balance,
	} {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("weights.%s must be finite", name)
		}
	}
	return nil
}
