package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanTimestampFrom renders t relative to now for recent times and as a
// date otherwise.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006 15:04")
	}
}

// TruncID returns the last 8 characters of an ID, dimmed. ULIDs share a
// timestamp prefix, so the tail is the distinguishing part.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatSlot renders a timeslot as "Mon 09:00-09:50".
func FormatSlot(s domain.TimeSlot) string {
	return fmt.Sprintf("%s %s-%s", s.Day, domain.FormatClock(s.StartMin), domain.FormatClock(s.EndMin))
}

// FormatSlots joins the slots of a section, or "--" when there are none.
func FormatSlots(slots []domain.TimeSlot) string {
	if len(slots) == 0 {
		return Dim("--")
	}
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		parts = append(parts, FormatSlot(s))
	}
	return strings.Join(parts, ", ")
}
