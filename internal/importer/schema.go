package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CatalogSchema is the in-memory form of an imported course catalog, before
// validation and conversion to domain types.
type CatalogSchema struct {
	Courses []CourseImport `json:"courses"`
}

type CourseImport struct {
	Code     string          `json:"code"`
	Title    string          `json:"title,omitempty"`
	Credits  int             `json:"credits"`
	Prereqs  []string        `json:"prereqs,omitempty"`
	Sections []SectionImport `json:"sections,omitempty"`

	Difficulty      int      `json:"difficulty,omitempty"`
	AvgHoursPerWeek float64  `json:"avgHoursPerWeek,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

type SectionImport struct {
	ID         string           `json:"id"`
	Type       string           `json:"type,omitempty"`
	Instructor string           `json:"instructor,omitempty"`
	Capacity   *int             `json:"capacity,omitempty"`
	TimeSlots  []TimeSlotImport `json:"timeSlots"`
}

// TimeSlotImport accepts either minute offsets (startMin/endMin) or clock
// strings (start/end as "HH:MM" or plain minutes). Minute offsets win when
// both are present.
type TimeSlotImport struct {
	Day      string `json:"day"`
	StartMin *int   `json:"startMin,omitempty"`
	EndMin   *int   `json:"endMin,omitempty"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
	Location string `json:"location,omitempty"`
}

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// LoadCatalog reads a catalog file, choosing the parser by extension.
func LoadCatalog(path string) (*CatalogSchema, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		s, err := LoadCatalogJSON(path)
		return s, FormatJSON, err
	case ".csv":
		s, err := LoadCatalogCSV(path)
		return s, FormatCSV, err
	default:
		return nil, "", fmt.Errorf("unsupported catalog format %q (expected .json or .csv)", filepath.Ext(path))
	}
}

// LoadCatalogJSON reads and parses a JSON catalog file.
func LoadCatalogJSON(path string) (*CatalogSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalogJSON(data)
}

// ParseCatalogJSON accepts either a bare array of courses or an object with
// a "courses" array.
func ParseCatalogJSON(data []byte) (*CatalogSchema, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var courses []CourseImport
		if err := json.Unmarshal(trimmed, &courses); err != nil {
			return nil, fmt.Errorf("parsing catalog file: %w", err)
		}
		return &CatalogSchema{Courses: courses}, nil
	}
	var schema CatalogSchema
	if err := json.Unmarshal(trimmed, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &schema, nil
}
