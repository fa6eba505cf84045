package repository

import (
	"context"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// CourseRepo stores the course catalog. Declared order of courses, prereqs,
// sections and timeslots is preserved by List.
type CourseRepo interface {
	ReplaceAll(ctx context.Context, courses []domain.Course) error
	List(ctx context.Context) ([]domain.Course, error)
	Count(ctx context.Context) (int, error)
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.SavedPlan) error
	GetByID(ctx context.Context, id string) (*domain.SavedPlan, error)
	ListRecent(ctx context.Context, limit int) ([]domain.SavedPlan, error)
}
