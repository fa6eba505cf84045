package app

import (
	"context"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// Use-case ports consumed by the driving adapters (HTTP, CLI).

type PlanUseCase interface {
	Generate(ctx context.Context, req PlanRequest) (*PlanResponse, error)
}

type CatalogUseCase interface {
	Import(ctx context.Context, path string) (*CatalogImportResult, error)
	List(ctx context.Context) ([]domain.Course, error)
}

type HistoryUseCase interface {
	List(ctx context.Context, limit int) ([]domain.SavedPlan, error)
	Get(ctx context.Context, id string) (*domain.SavedPlan, error)
}
