package scheduler

import "github.com/alexanderramin/courseplan/internal/domain"

// Selection is the winning candidate and its score. Index is the candidate's
// emission position, or -1 when no candidate beat the empty floor.
type Selection struct {
	Candidate  domain.Candidate
	Score      Score
	Index      int
	Considered int
}

// SelectBest scores every candidate against an implicit empty schedule and
// keeps the highest total. Equal totals prefer more credits; after that the
// earliest emitted candidate is kept.
func SelectBest(candidates []domain.Candidate, minCredits int, w Weights) Selection {
	best := Selection{
		Candidate:  domain.Candidate{},
		Score:      ScoreCandidate(domain.Candidate{}, minCredits, w),
		Index:      -1,
		Considered: len(candidates),
	}
	bestCredits := 0

	for i, c := range candidates {
		s := ScoreCandidate(c, minCredits, w)
		credits := c.TotalCredits()
		if s.Total > best.Score.Total || (s.Total == best.Score.Total && credits > bestCredits) {
			best.Candidate = c
			best.Score = s
			best.Index = i
			bestCredits = credits
		}
	}
	return best
}
