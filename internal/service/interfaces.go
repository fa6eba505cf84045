package service

import (
	"context"
	"time"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/domain"
)

type PlanService interface {
	Generate(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error)
}

type CatalogService interface {
	Import(ctx context.Context, path string) (*app.CatalogImportResult, error)
	List(ctx context.Context) ([]domain.Course, error)
}

type HistoryService interface {
	List(ctx context.Context, limit int) ([]domain.SavedPlan, error)
	Get(ctx context.Context, id string) (*domain.SavedPlan, error)
}

// CatalogSource yields the catalog a plan request runs against.
type CatalogSource interface {
	Catalog(ctx context.Context) (*domain.Catalog, error)
}

// PlanRecorder receives one observation per plan request. resp is nil when
// the request failed.
type PlanRecorder interface {
	RecordPlan(outcome string, resp *app.PlanResponse, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) RecordPlan(string, *app.PlanResponse, time.Duration) {}

var (
	_ app.PlanUseCase    = (*planService)(nil)
	_ app.CatalogUseCase = (*catalogService)(nil)
	_ app.HistoryUseCase = (*historyService)(nil)
)
