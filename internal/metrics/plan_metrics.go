package metrics

import (
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/scheduler"
)

// OutcomeOK labels a plan request that produced a response.
const OutcomeOK = "ok"

// PlanMetrics records planning requests in Prometheus collectors.
type PlanMetrics struct {
	requests   *prometheus.CounterVec
	candidates prometheus.Histogram
	duration   prometheus.Histogram
	rejections *prometheus.CounterVec
	truncated  *prometheus.CounterVec
}

// NewPlanMetrics registers the planner collectors on reg. A nil reg means the
// default registerer. Collectors that are already registered are reused.
func NewPlanMetrics(reg prometheus.Registerer) (*PlanMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "courseplan_plan_requests_total",
		Help: "Plan requests by outcome",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}
	candidates, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "courseplan_plan_candidates",
		Help:    "Candidates enumerated per successful plan request",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500, 1000},
	}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "courseplan_plan_duration_seconds",
		Help:    "Wall time spent generating a plan",
		Buckets: prometheus.DefBuckets,
	}))
	if err != nil {
		return nil, err
	}
	rejections, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "courseplan_rejections_total",
		Help: "Wishlist courses rejected by the eligibility filter",
	}, []string{"reason"}))
	if err != nil {
		return nil, err
	}
	truncated, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "courseplan_search_truncated_total",
		Help: "Searches that stopped before exhausting the space",
	}, []string{"reason"}))
	if err != nil {
		return nil, err
	}

	return &PlanMetrics{
		requests:   requests,
		candidates: candidates,
		duration:   duration,
		rejections: rejections,
		truncated:  truncated,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordPlan observes one plan request. resp is nil when the request failed.
func (m *PlanMetrics) RecordPlan(outcome string, resp *app.PlanResponse, elapsed time.Duration) {
	m.requests.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
	if resp == nil {
		return
	}
	m.candidates.Observe(float64(resp.CandidatesConsidered))
	for _, r := range resp.Rejected {
		m.rejections.WithLabelValues(RejectionKind(r.Reason)).Inc()
	}
	if resp.Truncated {
		m.truncated.WithLabelValues(resp.StopReason).Inc()
	}
}

// RejectionKind folds a rejection reason into a low-cardinality label.
func RejectionKind(reason string) string {
	switch {
	case reason == scheduler.ReasonNotFound:
		return "not_found"
	case reason == scheduler.ReasonAlreadyCompleted:
		return "completed"
	case reason == scheduler.ReasonNoSections:
		return "no_sections"
	case strings.HasPrefix(reason, "Missing prerequisites"):
		return "missing_prereqs"
	default:
		return "other"
	}
}
