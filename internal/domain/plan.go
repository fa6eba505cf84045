package domain

import "time"

// Pick pairs a course with the one section chosen for it in a candidate.
type Pick struct {
	Course  Course
	Section Section
}

// Candidate is one complete, conflict-free, credit-bounded combination of
// picks. At most one pick per course.
type Candidate struct {
	Picks []Pick
}

func (c Candidate) TotalCredits() int {
	total := 0
	for _, p := range c.Picks {
		total += p.Course.Credits
	}
	return total
}

func (c Candidate) CourseCodes() []string {
	codes := make([]string, 0, len(c.Picks))
	for _, p := range c.Picks {
		codes = append(codes, p.Course.Code)
	}
	return codes
}

func (c Candidate) SelectedSections() []SelectedSection {
	out := make([]SelectedSection, 0, len(c.Picks))
	for _, p := range c.Picks {
		out = append(out, SelectedSection{CourseCode: p.Course.Code, SectionID: p.Section.ID})
	}
	return out
}

type SelectedSection struct {
	CourseCode string `json:"courseCode"`
	SectionID  string `json:"sectionId"`
}

type Rejection struct {
	CourseCode string `json:"courseCode"`
	Reason     string `json:"reason"`
}

// SavedPlan is the persisted outcome of a planning request. RequestJSON and
// ResponseJSON hold the transport payloads verbatim.
type SavedPlan struct {
	ID           string
	CreatedAt    time.Time
	TotalCredits int
	Score        float64
	RequestJSON  string
	ResponseJSON string
}
