package scheduler

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomCourses builds a small weekday catalog with sections on a 30-minute
// grid so overlaps are frequent.
func randomCourses(rng *rand.Rand) []domain.Course {
	n := rng.Intn(6) + 1
	courses := make([]domain.Course, n)
	for i := range courses {
		numSections := rng.Intn(3) + 1
		sections := make([]domain.Section, numSections)
		for j := range sections {
			numSlots := rng.Intn(3) + 1
			slots := make([]domain.TimeSlot, numSlots)
			for k := range slots {
				start := 480 + rng.Intn(20)*30
				length := []int{50, 80, 110}[rng.Intn(3)]
				slots[k] = slot(domain.Weekdays[rng.Intn(5)], start, start+length)
			}
			sections[j] = sec(fmt.Sprintf("S%d", j+1), slots...)
		}
		courses[i] = crs(fmt.Sprintf("C%d", i+1), rng.Intn(6), nil, sections...)
	}
	return courses
}

func TestGenerateCandidates_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		courses := randomCourses(rng)
		maxCredits := rng.Intn(15)

		res, err := GenerateCandidates(context.Background(), courses, GenerateOptions{MaxCredits: maxCredits})
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, c := range res.Candidates {
			// Credit cap
			assert.LessOrEqual(t, c.TotalCredits(), maxCredits, "trial %d", trial)

			// One pick per course, no pairwise overlap
			codes := make(map[string]bool)
			for i, p := range c.Picks {
				assert.False(t, codes[p.Course.Code], "trial %d: course %s picked twice", trial, p.Course.Code)
				codes[p.Course.Code] = true
				for _, q := range c.Picks[i+1:] {
					assert.False(t, SectionsConflict(p.Section, q.Section),
						"trial %d: %s:%s overlaps %s:%s", trial, p.Course.Code, p.Section.ID, q.Course.Code, q.Section.ID)
				}
			}

			k := key(c)
			assert.False(t, seen[k], "trial %d: candidate %q emitted twice", trial, k)
			seen[k] = true
		}
	}
}

func TestGenerateCandidates_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		courses := randomCourses(rng)
		opts := GenerateOptions{MaxCredits: rng.Intn(15), MaxCandidates: rng.Intn(30) + 1}

		first, err := GenerateCandidates(context.Background(), courses, opts)
		require.NoError(t, err)
		second, err := GenerateCandidates(context.Background(), courses, opts)
		require.NoError(t, err)

		assert.Equal(t, keys(first.Candidates), keys(second.Candidates), "trial %d", trial)
		assert.Equal(t, first.NodesVisited, second.NodesVisited, "trial %d", trial)

		selA := SelectBest(first.Candidates, 6, DefaultWeights())
		selB := SelectBest(second.Candidates, 6, DefaultWeights())
		assert.Equal(t, selA.Index, selB.Index, "trial %d", trial)
		assert.Equal(t, selA.Score, selB.Score, "trial %d", trial)
	}
}

func TestGenerateCandidates_CappedRunIsPrefixOfFullRun(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		courses := randomCourses(rng)
		maxCredits := rng.Intn(15)

		full, err := GenerateCandidates(context.Background(), courses, GenerateOptions{MaxCredits: maxCredits})
		require.NoError(t, err)
		if len(full.Candidates) < 2 {
			continue
		}
		limit := rng.Intn(len(full.Candidates)-1) + 1

		capped, err := GenerateCandidates(context.Background(), courses,
			GenerateOptions{MaxCredits: maxCredits, MaxCandidates: limit})
		require.NoError(t, err)

		assert.Equal(t, keys(full.Candidates[:limit]), keys(capped.Candidates), "trial %d", trial)
		assert.Equal(t, StopCandidateCap, capped.StopReason, "trial %d", trial)
	}
}

func TestSelectBest_MonotonicInBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		courses := randomCourses(rng)
		maxCredits := rng.Intn(15) + 1
		minCredits := rng.Intn(maxCredits + 1)

		prev := SelectBest(nil, minCredits, DefaultWeights()).Score.Total
		for budget := 1; budget <= 40; budget++ {
			res, err := GenerateCandidates(context.Background(), courses,
				GenerateOptions{MaxCredits: maxCredits, MaxCandidates: budget})
			require.NoError(t, err)

			total := SelectBest(res.Candidates, minCredits, DefaultWeights()).Score.Total
			assert.GreaterOrEqual(t, total, prev, "trial %d budget %d", trial, budget)
			prev = total
		}
	}
}
