package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/scheduler"
)

// FormatPlan renders a plan response for the terminal. courses is used to
// show credits and meeting times for the picked sections; codes missing from
// it are shown without details.
func FormatPlan(resp *app.PlanResponse, courses []domain.Course) string {
	byCode := make(map[string]domain.Course, len(courses))
	for _, c := range courses {
		byCode[c.Code] = c
	}

	var b strings.Builder

	summary := fmt.Sprintf("%s\n%s  %s",
		RenderCreditBar(resp.TotalCredits, resp.Constraints.MinCredits, resp.Constraints.MaxCredits, 16),
		Dim(fmt.Sprintf("target %d-%d", resp.Constraints.MinCredits, resp.Constraints.MaxCredits)),
		Dim(fmt.Sprintf("score %s", scheduler.FormatScore(resp.Score))),
	)
	title := "Plan"
	if resp.PlanID != "" {
		title += " " + resp.PlanID
	}
	b.WriteString(RenderBox(title, summary))
	b.WriteString("\n\n")

	b.WriteString(Header("Selected sections"))
	b.WriteString("\n")
	if len(resp.SelectedSections) == 0 {
		b.WriteString(Dim("No courses selected."))
		b.WriteString("\n")
	} else {
		var rows [][]string
		var meetings []meeting
		for _, sel := range resp.SelectedSections {
			credits, slots := "--", Dim("--")
			if c, ok := byCode[sel.CourseCode]; ok {
				credits = strconv.Itoa(c.Credits)
				if sec, ok := c.Section(sel.SectionID); ok {
					slots = FormatSlots(sec.TimeSlots)
					for _, ts := range sec.TimeSlots {
						meetings = append(meetings, meeting{slot: ts, label: sel.CourseCode + " " + sel.SectionID})
					}
				}
			}
			rows = append(rows, []string{Bold(sel.CourseCode), sel.SectionID, credits, slots})
		}
		b.WriteString(RenderTableAligned([]string{"COURSE", "SECTION", "CR", "MEETS"}, rows, []bool{false, false, true}))
		if len(meetings) > 0 {
			b.WriteString("\n")
			b.WriteString(Header("Week"))
			b.WriteString("\n")
			b.WriteString(formatWeek(meetings))
		}
	}

	b.WriteString("\n")
	b.WriteString(Header("Score"))
	b.WriteString("\n")
	bd := resp.ScoreBreakdown
	b.WriteString(fmt.Sprintf("%s %s   %s\n",
		Bold("Total"),
		ScoreStyle(resp.Score).Render(scheduler.FormatScore(resp.Score)),
		Dim(fmt.Sprintf("(%d candidate(s) considered)", resp.CandidatesConsidered)),
	))
	terms := []struct {
		name string
		v    float64
	}{{"credits", bd.Credits}, {"gaps", bd.Gaps}, {"days", bd.Days}, {"balance", bd.Balance}}
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		parts = append(parts, Dim(t.name+" ")+ScoreStyle(t.v).Render(scheduler.FormatScore(t.v)))
	}
	b.WriteString(strings.Join(parts, Dim(" · ")) + "\n")
	if resp.Truncated {
		b.WriteString(StyleShort.Render(fmt.Sprintf("Search stopped early (%s); best among enumerated candidates.", resp.StopReason)))
		b.WriteString("\n")
	}

	if len(resp.Rejected) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Rejected"))
		b.WriteString("\n")
		for _, r := range resp.Rejected {
			b.WriteString(fmt.Sprintf("%s %s  %s\n", StyleOver.Render("✖"), Bold(r.CourseCode), Dim(r.Reason)))
		}
	}

	b.WriteString("\n")
	b.WriteString(Header("Explanation"))
	b.WriteString("\n")
	for _, line := range resp.Explanation {
		if strings.HasPrefix(line, "Note:") {
			b.WriteString(StyleShort.Render(line) + "\n")
			continue
		}
		b.WriteString(Dim(line) + "\n")
	}
	return b.String()
}

type meeting struct {
	slot  domain.TimeSlot
	label string
}

// formatWeek lists meetings grouped by day in Monday-first order, each day
// sorted by start time.
func formatWeek(ms []meeting) string {
	byDay := make(map[domain.Weekday][]meeting)
	for _, m := range ms {
		byDay[m.slot.Day] = append(byDay[m.slot.Day], m)
	}

	var b strings.Builder
	for _, day := range domain.Weekdays {
		dayMeetings := byDay[day]
		if len(dayMeetings) == 0 {
			continue
		}
		sort.SliceStable(dayMeetings, func(i, j int) bool { return dayMeetings[i].slot.StartMin < dayMeetings[j].slot.StartMin })
		for i, m := range dayMeetings {
			label := "   "
			if i == 0 {
				label = string(day)
			}
			b.WriteString(fmt.Sprintf("%s  %s-%s  %s  %s\n",
				StyleDay.Render(label),
				domain.FormatClock(m.slot.StartMin),
				domain.FormatClock(m.slot.EndMin),
				m.label,
				Dim(FormatMinutes(m.slot.Duration())),
			))
		}
	}
	return b.String()
}
