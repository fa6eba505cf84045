package formatter

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/scheduler"
)

// FormatPlanHistory renders saved plans newest first, with times relative
// to now.
func FormatPlanHistory(plans []domain.SavedPlan, now time.Time) string {
	if len(plans) == 0 {
		return Dim("No saved plans. Run: courseplan plan --save ...") + "\n"
	}
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			p.ID,
			HumanTimestampFrom(p.CreatedAt, now),
			strconv.Itoa(p.TotalCredits),
			ScoreStyle(p.Score).Render(scheduler.FormatScore(p.Score)),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Saved plans"))
	b.WriteString("\n")
	b.WriteString(RenderTableAligned([]string{"ID", "CREATED", "CR", "SCORE"}, rows, []bool{false, false, true, true}))
	return b.String()
}
