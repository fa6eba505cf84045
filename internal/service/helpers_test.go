package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/config"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/testutil"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func mustCatalog(t *testing.T, courses ...domain.Course) *domain.Catalog {
	t.Helper()
	c, err := domain.NewCatalog(courses)
	require.NoError(t, err)
	return c
}

// scenarioCatalog holds the courses used by the end-to-end scenarios.
func scenarioCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	return mustCatalog(t,
		testutil.NewTestCourse("CS101", testutil.WithCredits(4)),
		testutil.NewTestCourse("CS201", testutil.WithCredits(4), testutil.WithPrereqs("CS101"),
			testutil.WithSections(testutil.Section("A", testutil.Slot(domain.Tuesday, 600, 675)))),
		testutil.NewTestCourse("X", testutil.WithSections(testutil.Section("X1", testutil.Slot(domain.Monday, 600, 660)))),
		testutil.NewTestCourse("Y", testutil.WithSections(testutil.Section("Y1", testutil.Slot(domain.Monday, 630, 690)))),
		testutil.NewTestCourse("MATH120", testutil.WithSections()),
	)
}

type recordedPlan struct {
	outcome string
	resp    *app.PlanResponse
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordedPlan
}

func (r *fakeRecorder) RecordPlan(outcome string, resp *app.PlanResponse, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedPlan{outcome: outcome, resp: resp})
}

type fakeObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *fakeObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func newStaticPlanService(t *testing.T, c *domain.Catalog) PlanService {
	t.Helper()
	return NewPlanService(NewStaticCatalogSource(c), nil, config.DefaultPlannerConfig(), nil)
}
