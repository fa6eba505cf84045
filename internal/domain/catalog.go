package domain

import (
	"fmt"
	"strings"
)

// CatalogError reports a structurally invalid catalog record. It is fatal to
// planning: the request fails and no partial plan is returned.
type CatalogError struct {
	CourseCode string
	SectionID  string
	Problem    string
}

func (e *CatalogError) Error() string {
	var b strings.Builder
	b.WriteString("invalid catalog record")
	if e.CourseCode != "" {
		b.WriteString(" " + e.CourseCode)
	}
	if e.SectionID != "" {
		b.WriteString(" section " + e.SectionID)
	}
	b.WriteString(": " + e.Problem)
	return b.String()
}

// ValidateTimeSlot checks the day and the half-open interval of a slot.
func ValidateTimeSlot(s TimeSlot) error {
	if !s.Day.Valid() {
		return fmt.Errorf("unknown day %q", s.Day)
	}
	if s.StartMin < 0 || s.EndMin > MinutesPerDay {
		return fmt.Errorf("slot %s %d-%d outside 0-%d", s.Day, s.StartMin, s.EndMin, MinutesPerDay)
	}
	if s.StartMin >= s.EndMin {
		return fmt.Errorf("slot %s startMin %d must be before endMin %d", s.Day, s.StartMin, s.EndMin)
	}
	return nil
}

// Validate checks the invariants the planner relies on. Sections without
// timeslots are accepted here; they only become an error once they take part
// in conflict checks (see ValidateSchedulable).
func (c Course) Validate() error {
	if strings.TrimSpace(c.Code) == "" {
		return &CatalogError{Problem: "course code is required"}
	}
	if c.Credits < 0 {
		return &CatalogError{CourseCode: c.Code, Problem: fmt.Sprintf("credits %d must be non-negative", c.Credits)}
	}
	seen := make(map[string]bool, len(c.Sections))
	for _, s := range c.Sections {
		if s.ID == "" {
			return &CatalogError{CourseCode: c.Code, Problem: "section id is required"}
		}
		if seen[s.ID] {
			return &CatalogError{CourseCode: c.Code, SectionID: s.ID, Problem: "duplicate section id"}
		}
		seen[s.ID] = true
		for _, slot := range s.TimeSlots {
			if err := ValidateTimeSlot(slot); err != nil {
				return &CatalogError{CourseCode: c.Code, SectionID: s.ID, Problem: err.Error()}
			}
		}
	}
	return nil
}

// ValidateSchedulable is Validate plus the requirement that every section
// carries at least one timeslot.
func (c Course) ValidateSchedulable() error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, s := range c.Sections {
		if len(s.TimeSlots) == 0 {
			return &CatalogError{CourseCode: c.Code, SectionID: s.ID, Problem: "section has no timeslots"}
		}
	}
	return nil
}

// Catalog is an immutable code -> Course index. It is never mutated after
// NewCatalog returns, so concurrent readers need no locking.
type Catalog struct {
	byCode map[string]Course
	order  []string
}

// NewCatalog indexes courses, preserving their order for listing. Duplicate
// codes and invalid records are rejected.
func NewCatalog(courses []Course) (*Catalog, error) {
	c := &Catalog{
		byCode: make(map[string]Course, len(courses)),
		order:  make([]string, 0, len(courses)),
	}
	for _, course := range courses {
		if err := course.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byCode[course.Code]; dup {
			return nil, &CatalogError{CourseCode: course.Code, Problem: "duplicate course code"}
		}
		c.byCode[course.Code] = course
		c.order = append(c.order, course.Code)
	}
	return c, nil
}

// Lookup returns the course with the given code.
func (c *Catalog) Lookup(code string) (Course, bool) {
	if c == nil {
		return Course{}, false
	}
	course, ok := c.byCode[code]
	return course, ok
}

// Courses returns all courses in load order.
func (c *Catalog) Courses() []Course {
	if c == nil {
		return nil
	}
	out := make([]Course, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.byCode[code])
	}
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}
