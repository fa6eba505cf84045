package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/domain"
)

// FormatCourseList renders the catalog as a table, one row per section.
func FormatCourseList(courses []domain.Course) string {
	if len(courses) == 0 {
		return Dim("Catalog is empty. Import one with: courseplan catalog import <file>") + "\n"
	}

	var rows [][]string
	sections := 0
	for _, c := range courses {
		prereqs := Dim("--")
		if len(c.Prereqs) > 0 {
			prereqs = strings.Join(c.Prereqs, ", ")
		}
		first := []string{Bold(c.Code), c.Title, strconv.Itoa(c.Credits), prereqs}
		if len(c.Sections) == 0 {
			rows = append(rows, append(first, StyleShort.Render("no sections"), ""))
			continue
		}
		for i, s := range c.Sections {
			sections++
			row := []string{"", "", "", ""}
			if i == 0 {
				row = first
			}
			id := s.ID
			if s.Type != "" {
				id += " " + Dim(string(s.Type))
			}
			rows = append(rows, append(row, id, FormatSlots(s.TimeSlots)))
		}
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Catalog (%d courses, %d sections)", len(courses), sections)))
	b.WriteString("\n")
	b.WriteString(RenderTableAligned(
		[]string{"CODE", "TITLE", "CR", "PREREQS", "SECTION", "MEETS"},
		rows,
		[]bool{false, false, true},
	))
	return b.String()
}

// FormatImportResult summarizes a catalog import.
func FormatImportResult(res *app.CatalogImportResult) string {
	return fmt.Sprintf("%s Imported %s from %s %s\n",
		StyleOK.Render("✔"),
		Bold(fmt.Sprintf("%d courses", res.CourseCount)),
		res.Path,
		Dim(fmt.Sprintf("(%s, %d sections, %d meetings)", res.Format, res.SectionCount, res.SlotCount)),
	)
}
