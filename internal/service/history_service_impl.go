package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/repository"
)

const defaultHistoryLimit = 20

type historyService struct {
	plans repository.PlanRepo
}

func NewHistoryService(plans repository.PlanRepo) HistoryService {
	return &historyService{plans: plans}
}

// List returns the most recent saved plans, newest first. A non-positive
// limit means the default page size.
func (s *historyService) List(ctx context.Context, limit int) ([]domain.SavedPlan, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	plans, err := s.plans.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	return plans, nil
}

func (s *historyService) Get(ctx context.Context, id string) (*domain.SavedPlan, error) {
	p, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting plan %s: %w", id, err)
	}
	return p, nil
}
