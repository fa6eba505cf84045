package scheduler

import "github.com/alexanderramin/courseplan/internal/domain"

// SlotsOverlap reports whether two slots share time on the same day.
// Intervals are half-open, so touching endpoints do not overlap.
func SlotsOverlap(a, b domain.TimeSlot) bool {
	if a.Day != b.Day {
		return false
	}
	return a.StartMin < b.EndMin && b.StartMin < a.EndMin
}

// SectionsConflict reports whether any slot of s1 overlaps any slot of s2.
func SectionsConflict(s1, s2 domain.Section) bool {
	for _, a := range s1.TimeSlots {
		for _, b := range s2.TimeSlots {
			if SlotsOverlap(a, b) {
				return true
			}
		}
	}
	return false
}

func conflictsWithAny(picks []domain.Pick, next domain.Section) bool {
	for _, p := range picks {
		if SectionsConflict(p.Section, next) {
			return true
		}
	}
	return false
}
