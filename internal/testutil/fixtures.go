package testutil

import (
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/oklog/ulid/v2"
)

// Course options
type CourseOption func(*domain.Course)

func WithCredits(n int) CourseOption {
	return func(c *domain.Course) {
		c.Credits = n
	}
}

func WithTitle(title string) CourseOption {
	return func(c *domain.Course) {
		c.Title = title
	}
}

func WithPrereqs(codes ...string) CourseOption {
	return func(c *domain.Course) {
		c.Prereqs = codes
	}
}

// WithSections replaces the default section. Passing none leaves the course
// without sections.
func WithSections(sections ...domain.Section) CourseOption {
	return func(c *domain.Course) {
		c.Sections = sections
	}
}

// NewTestCourse returns a 3-credit course with one lecture section "A"
// meeting Monday 09:00-09:50.
func NewTestCourse(code string, opts ...CourseOption) domain.Course {
	c := domain.Course{
		Code:     code,
		Title:    code + " Test Course",
		Credits:  3,
		Sections: []domain.Section{Section("A", Slot(domain.Monday, 540, 590))},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func Section(id string, slots ...domain.TimeSlot) domain.Section {
	return domain.Section{ID: id, Type: domain.SectionLecture, TimeSlots: slots}
}

func Slot(day domain.Weekday, start, end int) domain.TimeSlot {
	return domain.TimeSlot{Day: day, StartMin: start, EndMin: end}
}

// NewTestSavedPlan returns a stored plan with a fresh ULID.
func NewTestSavedPlan(credits int, createdAt time.Time) *domain.SavedPlan {
	return &domain.SavedPlan{
		ID:           ulid.Make().String(),
		CreatedAt:    createdAt,
		TotalCredits: credits,
		Score:        float64(credits),
		RequestJSON:  `{"wishlist":[],"completed":[]}`,
		ResponseJSON: `{"totalCredits":0}`,
	}
}
