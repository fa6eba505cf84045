package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// Convert transforms a validated CatalogSchema into domain courses, keeping
// the declared order of courses, prereqs, sections and timeslots.
// Call ValidateCatalog first; Convert assumes the schema is valid.
func Convert(schema *CatalogSchema) ([]domain.Course, error) {
	courses := make([]domain.Course, 0, len(schema.Courses))
	for _, c := range schema.Courses {
		course := domain.Course{
			Code:            c.Code,
			Title:           c.Title,
			Credits:         c.Credits,
			Prereqs:         c.Prereqs,
			Difficulty:      c.Difficulty,
			AvgHoursPerWeek: c.AvgHoursPerWeek,
			Tags:            c.Tags,
		}
		for _, s := range c.Sections {
			section := domain.Section{
				ID:         s.ID,
				Type:       domain.SectionType(strings.ToUpper(s.Type)),
				Instructor: s.Instructor,
				Capacity:   s.Capacity,
			}
			for k, ts := range s.TimeSlots {
				slot, err := convertTimeSlot(ts)
				if err != nil {
					return nil, fmt.Errorf("course %s section %s timeslot %d: %w", c.Code, s.ID, k, err)
				}
				section.TimeSlots = append(section.TimeSlots, slot)
			}
			course.Sections = append(course.Sections, section)
		}
		courses = append(courses, course)
	}
	return courses, nil
}
