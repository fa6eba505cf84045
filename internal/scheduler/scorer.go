package scheduler

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// Weights multiply the breakdown terms into the total score.
type Weights struct {
	Credits float64
	Gaps    float64
	Days    float64
	Balance float64
}

func DefaultWeights() Weights {
	return Weights{
		Credits: 3,
		Gaps:    0.02,
		Days:    5,
		Balance: 0.05,
	}
}

// WeightOverrides carries caller-supplied weights. Nil fields keep their
// default independently of the others.
type WeightOverrides struct {
	Credits *float64
	Gaps    *float64
	Days    *float64
	Balance *float64
}

func ResolveWeights(o *WeightOverrides) Weights {
	return DefaultWeights().Override(o)
}

// Override returns w with every non-nil field of o applied.
func (w Weights) Override(o *WeightOverrides) Weights {
	if o == nil {
		return w
	}
	w.Credits = domain.Float64FromPtrWithDefault(w.Credits, o.Credits)
	w.Gaps = domain.Float64FromPtrWithDefault(w.Gaps, o.Gaps)
	w.Days = domain.Float64FromPtrWithDefault(w.Days, o.Days)
	w.Balance = domain.Float64FromPtrWithDefault(w.Balance, o.Balance)
	return w
}

// Breakdown holds the signed score terms; more positive is better for each.
type Breakdown struct {
	Credits float64 `json:"credits"`
	Gaps    float64 `json:"gaps"`
	Days    float64 `json:"days"`
	Balance float64 `json:"balance"`
}

type Score struct {
	Total     float64
	Breakdown Breakdown

	GapMinutes   int
	DayCount     int
	DailyMinutes []float64
}

type block struct {
	start, end int
}

// ScoreCandidate evaluates a candidate against the credit floor. Days are
// visited in Weekdays order so repeated calls are bit-identical.
func ScoreCandidate(c domain.Candidate, minCredits int, w Weights) Score {
	byDay := make(map[domain.Weekday][]block)
	for _, p := range c.Picks {
		for _, slot := range p.Section.TimeSlots {
			byDay[slot.Day] = append(byDay[slot.Day], block{slot.StartMin, slot.EndMin})
		}
	}

	var (
		gapMinutes int
		dayCount   int
		daily      []float64
	)
	for _, day := range domain.Weekdays {
		blocks := byDay[day]
		if len(blocks) == 0 {
			continue
		}
		sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].start < blocks[j].start })

		dayCount++
		occupied := 0
		for i, b := range blocks {
			occupied += b.end - b.start
			if i > 0 {
				if gap := b.start - blocks[i-1].end; gap > 0 {
					gapMinutes += gap
				}
			}
		}
		daily = append(daily, float64(occupied))
	}

	balance := 0.0
	if len(daily) >= 2 {
		balance = stat.PopStdDev(daily, nil)
	}

	bd := Breakdown{
		Credits: float64(c.TotalCredits() - minCredits),
		Gaps:    float64(-gapMinutes),
		Days:    float64(-dayCount),
		Balance: negate(balance),
	}
	return Score{
		Total:        bd.Credits*w.Credits + bd.Gaps*w.Gaps + bd.Days*w.Days + bd.Balance*w.Balance,
		Breakdown:    bd,
		GapMinutes:   gapMinutes,
		DayCount:     dayCount,
		DailyMinutes: daily,
	}
}

// negate avoids producing negative zero, which would render as "-0.00".
func negate(x float64) float64 {
	if x == 0 {
		return 0
	}
	return -x
}
