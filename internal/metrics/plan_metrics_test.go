package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/scheduler"
)

func TestPlanMetrics_RecordPlan(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPlanMetrics(reg)
	require.NoError(t, err)

	resp := &app.PlanResponse{
		CandidatesConsidered: 7,
		Truncated:            true,
		StopReason:           string(scheduler.StopCandidateCap),
		Rejected: []domain.Rejection{
			{CourseCode: "CS999", Reason: scheduler.ReasonNotFound},
			{CourseCode: "CS301", Reason: scheduler.MissingPrereqsReason([]string{"CS201"})},
			{CourseCode: "CS302", Reason: scheduler.MissingPrereqsReason([]string{"CS201", "MATH120"})},
		},
	}
	m.RecordPlan(OutcomeOK, resp, 20*time.Millisecond)
	m.RecordPlan(string(app.PlanErrCatalogInvalid), nil, time.Millisecond)

	expected := `
# HELP courseplan_plan_requests_total Plan requests by outcome
# TYPE courseplan_plan_requests_total counter
courseplan_plan_requests_total{outcome="CATALOG_INVALID"} 1
courseplan_plan_requests_total{outcome="ok"} 1
`
	require.NoError(t, testutil.CollectAndCompare(m.requests, strings.NewReader(expected)))

	expectedRejections := `
# HELP courseplan_rejections_total Wishlist courses rejected by the eligibility filter
# TYPE courseplan_rejections_total counter
courseplan_rejections_total{reason="missing_prereqs"} 2
courseplan_rejections_total{reason="not_found"} 1
`
	require.NoError(t, testutil.CollectAndCompare(m.rejections, strings.NewReader(expectedRejections)))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.truncated.WithLabelValues("candidate_cap")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.candidates))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestPlanMetrics_UntruncatedSearchNotCounted(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPlanMetrics(reg)
	require.NoError(t, err)

	m.RecordPlan(OutcomeOK, &app.PlanResponse{StopReason: string(scheduler.StopExhausted)}, time.Millisecond)

	assert.Equal(t, 0, testutil.CollectAndCount(m.truncated))
}

func TestNewPlanMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPlanMetrics(reg)
	require.NoError(t, err)
	second, err := NewPlanMetrics(reg)
	require.NoError(t, err)

	first.RecordPlan(OutcomeOK, nil, time.Millisecond)
	second.RecordPlan(OutcomeOK, nil, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(first.requests.WithLabelValues(OutcomeOK)))
}

func TestRejectionKind(t *testing.T) {
	tests := []struct {
		reason string
		want   string
	}{
		{scheduler.ReasonNotFound, "not_found"},
		{scheduler.ReasonAlreadyCompleted, "completed"},
		{scheduler.ReasonNoSections, "no_sections"},
		{scheduler.MissingPrereqsReason([]string{"A", "B"}), "missing_prereqs"},
		{"something else", "other"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RejectionKind(tt.reason))
		})
	}
}

func TestHandler_ServesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPlanMetrics(reg)
	require.NoError(t, err)
	m.RecordPlan(OutcomeOK, nil, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `courseplan_plan_requests_total{outcome="ok"} 1`)
}
