package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// ValidateCatalog checks the imported catalog before conversion.
// Returns a slice of all validation errors found.
func ValidateCatalog(schema *CatalogSchema) []error {
	var errs []error
	if len(schema.Courses) == 0 {
		return append(errs, fmt.Errorf("courses: at least one course is required"))
	}

	codes := make(map[string]bool)
	for i, c := range schema.Courses {
		prefix := fmt.Sprintf("courses[%d]", i)
		if c.Code == "" {
			errs = append(errs, fmt.Errorf("%s.code is required", prefix))
		} else if codes[c.Code] {
			errs = append(errs, fmt.Errorf("%s.code: duplicate code %q", prefix, c.Code))
		}
		codes[c.Code] = true

		if c.Credits < 0 {
			errs = append(errs, fmt.Errorf("%s.credits must be non-negative, got %d", prefix, c.Credits))
		}
		if c.Difficulty < 0 || c.Difficulty > 5 {
			errs = append(errs, fmt.Errorf("%s.difficulty must be between 0 and 5, got %d", prefix, c.Difficulty))
		}
		for _, p := range c.Prereqs {
			if p == c.Code {
				errs = append(errs, fmt.Errorf("%s.prereqs: course cannot require itself", prefix))
			}
		}
		errs = append(errs, validateSections(prefix, c.Sections)...)
	}
	return errs
}

func validateSections(coursePrefix string, sections []SectionImport) []error {
	var errs []error
	ids := make(map[string]bool)
	for j, s := range sections {
		prefix := fmt.Sprintf("%s.sections[%d]", coursePrefix, j)
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[s.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate section id %q", prefix, s.ID))
		}
		ids[s.ID] = true

		if s.Type != "" && !domain.ValidSectionTypes[strings.ToUpper(s.Type)] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, s.Type))
		}
		if s.Capacity != nil && *s.Capacity < 0 {
			errs = append(errs, fmt.Errorf("%s.capacity must be non-negative", prefix))
		}
		if len(s.TimeSlots) == 0 {
			errs = append(errs, fmt.Errorf("%s.timeSlots: at least one timeslot is required", prefix))
		}
		for k, ts := range s.TimeSlots {
			if _, err := convertTimeSlot(ts); err != nil {
				errs = append(errs, fmt.Errorf("%s.timeSlots[%d]: %w", prefix, k, err))
			}
		}
	}
	return errs
}

// convertTimeSlot resolves the day and minute bounds of an imported slot and
// checks them against the domain rules.
func convertTimeSlot(ts TimeSlotImport) (domain.TimeSlot, error) {
	day, err := domain.ParseWeekday(ts.Day)
	if err != nil {
		return domain.TimeSlot{}, err
	}
	start, err := slotBound("start", ts.StartMin, ts.Start)
	if err != nil {
		return domain.TimeSlot{}, err
	}
	end, err := slotBound("end", ts.EndMin, ts.End)
	if err != nil {
		return domain.TimeSlot{}, err
	}
	slot := domain.TimeSlot{Day: day, StartMin: start, EndMin: end, Location: ts.Location}
	if err := domain.ValidateTimeSlot(slot); err != nil {
		return domain.TimeSlot{}, err
	}
	return slot, nil
}

func slotBound(name string, minutes *int, clock string) (int, error) {
	if minutes != nil {
		return *minutes, nil
	}
	if clock == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	m, err := ParseClock(clock)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

// ParseClock accepts "HH:MM" (24h) or a plain count of minutes since midnight.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		m, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid time %q (expected HH:MM or minutes)", s)
		}
		return m, nil
	}
	h, errH := strconv.Atoi(hh)
	m, errM := strconv.Atoi(mm)
	if errH != nil || errM != nil || len(mm) != 2 || h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM or minutes)", s)
	}
	return h*60 + m, nil
}
