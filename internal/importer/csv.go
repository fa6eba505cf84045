package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

// CatalogRow is one meeting of one section. Course-level columns are read
// from the first row of each course; a row with an empty section_id declares
// a course without sections, and a row with an empty day declares a section
// without meetings.
type CatalogRow struct {
	CourseCode  string `csv:"course_code"`
	Title       string `csv:"title"`
	Credits     int    `csv:"credits"`
	Prereqs     string `csv:"prereqs"`
	SectionID   string `csv:"section_id"`
	SectionType string `csv:"section_type"`
	Instructor  string `csv:"instructor"`
	Day         string `csv:"day"`
	Start       string `csv:"start"`
	End         string `csv:"end"`
	Location    string `csv:"location"`
}

const prereqSeparator = ";"

// LoadCatalogCSV reads and parses a comma-separated catalog file.
func LoadCatalogCSV(path string) (*CatalogSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCatalogCSV(f, ',')
}

// ParseCatalogCSV decodes rows with gocsv and groups them into courses and
// sections in first-appearance order.
func ParseCatalogCSV(in io.Reader, delim rune) (*CatalogSchema, error) {
	r := csv.NewReader(in)
	r.Comma = delim
	r.TrimLeadingSpace = true

	var rows []CatalogRow
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, fmt.Errorf("parsing catalog csv: %w", err)
	}
	return GroupRows(rows), nil
}

func GroupRows(rows []CatalogRow) *CatalogSchema {
	schema := &CatalogSchema{}
	courseIdx := make(map[string]int)
	sectionIdx := make(map[[2]string]int)

	for _, row := range rows {
		code := strings.TrimSpace(row.CourseCode)
		ci, ok := courseIdx[code]
		if !ok {
			ci = len(schema.Courses)
			courseIdx[code] = ci
			schema.Courses = append(schema.Courses, CourseImport{
				Code:    code,
				Title:   strings.TrimSpace(row.Title),
				Credits: row.Credits,
				Prereqs: splitPrereqs(row.Prereqs),
			})
		}
		course := &schema.Courses[ci]

		secID := strings.TrimSpace(row.SectionID)
		if secID == "" {
			continue
		}
		key := [2]string{code, secID}
		si, ok := sectionIdx[key]
		if !ok {
			si = len(course.Sections)
			sectionIdx[key] = si
			course.Sections = append(course.Sections, SectionImport{
				ID:         secID,
				Type:       strings.ToUpper(strings.TrimSpace(row.SectionType)),
				Instructor: strings.TrimSpace(row.Instructor),
			})
		}

		if strings.TrimSpace(row.Day) == "" {
			continue
		}
		section := &course.Sections[si]
		section.TimeSlots = append(section.TimeSlots, TimeSlotImport{
			Day:      strings.TrimSpace(row.Day),
			Start:    strings.TrimSpace(row.Start),
			End:      strings.TrimSpace(row.End),
			Location: strings.TrimSpace(row.Location),
		})
	}
	return schema
}

func splitPrereqs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, prereqSeparator) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
