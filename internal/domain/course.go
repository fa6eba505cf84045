package domain

import "fmt"

// TimeSlot is a half-open [StartMin, EndMin) meeting interval on one day,
// in minutes since midnight.
type TimeSlot struct {
	Day      Weekday `json:"day"`
	StartMin int     `json:"startMin"`
	EndMin   int     `json:"endMin"`
	Location string  `json:"location,omitempty"`
}

// FormatClock renders minutes since midnight as HH:MM.
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Duration returns the slot length in minutes.
func (s TimeSlot) Duration() int {
	return s.EndMin - s.StartMin
}

type Section struct {
	ID         string      `json:"id"`
	Type       SectionType `json:"type,omitempty"`
	Instructor string      `json:"instructor,omitempty"`
	Capacity   *int        `json:"capacity,omitempty"`
	TimeSlots  []TimeSlot  `json:"timeSlots"`
}

type Course struct {
	Code     string    `json:"code"`
	Title    string    `json:"title,omitempty"`
	Credits  int       `json:"credits"`
	Prereqs  []string  `json:"prereqs"`
	Sections []Section `json:"sections"`

	// Descriptive metadata, shown in listings only.
	Difficulty      int      `json:"difficulty,omitempty"`
	AvgHoursPerWeek float64  `json:"avgHoursPerWeek,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

// MissingPrereqs returns the prerequisites of c that are not in completed,
// in the course's declared order.
func (c Course) MissingPrereqs(completed map[string]bool) []string {
	var missing []string
	for _, p := range c.Prereqs {
		if !completed[p] {
			missing = append(missing, p)
		}
	}
	return missing
}

// Section returns the section with the given ID.
func (c Course) Section(id string) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

type Constraints struct {
	MinCredits int `json:"minCredits"`
	MaxCredits int `json:"maxCredits"`
}
