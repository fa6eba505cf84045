package scheduler

import (
	"strings"

	"github.com/alexanderramin/courseplan/internal/domain"
)

const (
	ReasonNotFound         = "Course not found in dataset"
	ReasonAlreadyCompleted = "Already completed"
	ReasonNoSections       = "No sections available"

	missingPrereqsPrefix = "Missing prerequisites: "
)

// MissingPrereqsReason formats the rejection reason for unmet prerequisites.
func MissingPrereqsReason(missing []string) string {
	return missingPrereqsPrefix + strings.Join(missing, ", ")
}

// Eligibility is the outcome of filtering a wishlist against the catalog.
type Eligibility struct {
	// PrereqEligible passed the existence, completion and prerequisite checks.
	PrereqEligible []domain.Course
	// Eligible additionally has at least one section. Its order is the
	// generator's branching order.
	Eligible []domain.Course
	Rejected []domain.Rejection
}

// FilterEligible classifies each wishlist code in order. The first applicable
// rejection wins; a code seen earlier in the wishlist is not evaluated again.
func FilterEligible(wishlist, completed []string, catalog *domain.Catalog) Eligibility {
	done := domain.CodeSet(completed)
	seen := make(map[string]bool, len(wishlist))
	var out Eligibility

	for _, code := range wishlist {
		if seen[code] {
			continue
		}
		seen[code] = true

		course, ok := catalog.Lookup(code)
		switch {
		case !ok:
			out.Rejected = append(out.Rejected, domain.Rejection{CourseCode: code, Reason: ReasonNotFound})
		case done[code]:
			out.Rejected = append(out.Rejected, domain.Rejection{CourseCode: code, Reason: ReasonAlreadyCompleted})
		default:
			if missing := course.MissingPrereqs(done); len(missing) > 0 {
				out.Rejected = append(out.Rejected, domain.Rejection{CourseCode: code, Reason: MissingPrereqsReason(missing)})
				continue
			}
			out.PrereqEligible = append(out.PrereqEligible, course)
		}
	}

	for _, course := range out.PrereqEligible {
		if len(course.Sections) == 0 {
			out.Rejected = append(out.Rejected, domain.Rejection{CourseCode: course.Code, Reason: ReasonNoSections})
			continue
		}
		out.Eligible = append(out.Eligible, course)
	}
	return out
}

// Codes returns the course codes of courses in order.
func Codes(courses []domain.Course) []string {
	codes := make([]string, 0, len(courses))
	for _, c := range courses {
		codes = append(codes, c.Code)
	}
	return codes
}
