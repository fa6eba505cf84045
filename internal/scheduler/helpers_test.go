package scheduler

import (
	"strings"
	"testing"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/stretchr/testify/require"
)

func slot(day domain.Weekday, start, end int) domain.TimeSlot {
	return domain.TimeSlot{Day: day, StartMin: start, EndMin: end}
}

func sec(id string, slots ...domain.TimeSlot) domain.Section {
	return domain.Section{ID: id, TimeSlots: slots}
}

func crs(code string, credits int, prereqs []string, sections ...domain.Section) domain.Course {
	return domain.Course{Code: code, Credits: credits, Prereqs: prereqs, Sections: sections}
}

func mustCatalog(t *testing.T, courses ...domain.Course) *domain.Catalog {
	t.Helper()
	cat, err := domain.NewCatalog(courses)
	require.NoError(t, err)
	return cat
}

// key renders a candidate as "X:X1+Y:Y1"; the empty candidate is "".
func key(c domain.Candidate) string {
	parts := make([]string, 0, len(c.Picks))
	for _, p := range c.Picks {
		parts = append(parts, p.Course.Code+":"+p.Section.ID)
	}
	return strings.Join(parts, "+")
}

func keys(cs []domain.Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, key(c))
	}
	return out
}

func f64(v float64) *float64 { return &v }
