package scheduler

import (
	"context"
	"testing"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBest_NoCandidatesFallsBackToEmptyFloor(t *testing.T) {
	sel := SelectBest(nil, 12, DefaultWeights())

	assert.Equal(t, -1, sel.Index)
	assert.Empty(t, sel.Candidate.Picks)
	assert.Equal(t, 0, sel.Considered)
	assert.Equal(t, -36.0, sel.Score.Total)
}

func TestSelectBest_ScenarioC_PicksSingleCourse(t *testing.T) {
	courses := []domain.Course{
		crs("X", 3, nil, sec("1", slot(domain.Monday, 600, 660))),
		crs("Y", 3, nil, sec("1", slot(domain.Monday, 630, 690))),
	}
	res, err := GenerateCandidates(context.Background(), courses, GenerateOptions{MaxCredits: 6})
	require.NoError(t, err)

	sel := SelectBest(res.Candidates, 12, DefaultWeights())

	// X and Y score identically; the earlier-emitted Y wins.
	require.Len(t, sel.Candidate.Picks, 1)
	assert.Equal(t, []string{"Y"}, sel.Candidate.CourseCodes())
	assert.Equal(t, 1, sel.Index)
	assert.Equal(t, 3, sel.Considered)
}

func TestSelectBest_TieBreaksOnCreditsThenEmissionOrder(t *testing.T) {
	res, err := GenerateCandidates(context.Background(), twoCourseFixture(), GenerateOptions{MaxCredits: 10})
	require.NoError(t, err)

	flat := Weights{}
	sel := SelectBest(res.Candidates, 0, flat)

	assert.Equal(t, "X:X2+Y:Y1", key(sel.Candidate))
	assert.Equal(t, 4, sel.Index)
	assert.Equal(t, 6, sel.Candidate.TotalCredits())
}

func TestSelectBest_EmptyCandidateDoesNotDisplaceFloor(t *testing.T) {
	sel := SelectBest([]domain.Candidate{{}}, 0, Weights{})

	assert.Equal(t, -1, sel.Index)
	assert.Equal(t, 1, sel.Considered)
}

func TestSelectBest_PrefersFewerDays(t *testing.T) {
	spread := crs("S", 4, nil,
		sec("MWF", slot(domain.Monday, 540, 590), slot(domain.Wednesday, 540, 590), slot(domain.Friday, 540, 590)),
		sec("TTh", slot(domain.Tuesday, 540, 615), slot(domain.Thursday, 540, 615)),
	)
	res, err := GenerateCandidates(context.Background(), []domain.Course{spread}, GenerateOptions{MaxCredits: 4})
	require.NoError(t, err)

	sel := SelectBest(res.Candidates, 0, DefaultWeights())

	assert.Equal(t, "S:TTh", key(sel.Candidate))
}
