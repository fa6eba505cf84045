package cli

import (
	"fmt"
	"io"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/alexanderramin/courseplan/internal/domain"
)

// courseplanHuhTheme returns a huh theme built on the formatter palette.
func courseplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorOK)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planFormValues is what the interactive plan form edits in place.
type planFormValues struct {
	Wishlist  []string
	Completed []string
	MinText   string
	MaxText   string
	Save      bool
}

func courseOptions(courses []domain.Course) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(courses))
	for _, c := range courses {
		label := fmt.Sprintf("%s (%d cr)", c.Code, c.Credits)
		if c.Title != "" {
			label = fmt.Sprintf("%s  %s (%d cr)", c.Code, c.Title, c.Credits)
		}
		opts = append(opts, huh.NewOption(label, c.Code))
	}
	return opts
}

func validateCredits(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 0 {
		return fmt.Errorf("must be 0 or more")
	}
	return nil
}

// newPlanForm asks for wishlist, completed courses, the credit window and
// whether to save. Pre-filled values come from flags. The form draws on out so
// stdout stays free for the plan itself.
func newPlanForm(courses []domain.Course, v *planFormValues, out io.Writer) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which courses do you want?").
				Description("Listed order is the priority order.").
				Options(courseOptions(courses)...).
				Value(&v.Wishlist),
			huh.NewMultiSelect[string]().
				Title("Which courses have you completed?").
				Options(courseOptions(courses)...).
				Value(&v.Completed),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum credits").
				Value(&v.MinText).
				Validate(validateCredits),
			huh.NewInput().
				Title("Maximum credits").
				Value(&v.MaxText).
				Validate(validateCredits),
			huh.NewConfirm().
				Title("Save the plan?").
				Value(&v.Save),
		),
	).WithTheme(courseplanHuhTheme()).
		WithShowHelp(false).
		WithProgramOptions(tea.WithOutput(out))
}
