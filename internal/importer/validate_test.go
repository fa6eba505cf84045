package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt(i int) *int { return &i }

func validMinimalCatalog() *CatalogSchema {
	return &CatalogSchema{
		Courses: []CourseImport{{
			Code:    "CS101",
			Credits: 4,
			Sections: []SectionImport{{
				ID:        "A",
				TimeSlots: []TimeSlotImport{{Day: "Mon", StartMin: ptrInt(540), EndMin: ptrInt(590)}},
			}},
		}},
	}
}

func TestValidateCatalog_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateCatalog(validMinimalCatalog()))
}

func TestValidateCatalog_ValidTestdata(t *testing.T) {
	for _, path := range []string{"testdata/catalog.json", "testdata/catalog.csv"} {
		schema, _, err := LoadCatalog(path)
		require.NoError(t, err, path)
		assert.Empty(t, ValidateCatalog(schema), path)
	}
}

func TestValidateCatalog_EmptyCatalog(t *testing.T) {
	errs := ValidateCatalog(&CatalogSchema{})
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "courses: at least one course is required")
}

func TestValidateCatalog_CollectsAllErrors(t *testing.T) {
	schema := &CatalogSchema{
		Courses: []CourseImport{
			{
				Code:    "CS101",
				Credits: -1,
				Prereqs: []string{"CS101"},
				Sections: []SectionImport{
					{ID: "A", Type: "SEM", TimeSlots: []TimeSlotImport{{Day: "Mon", Start: "10:00", End: "09:00"}}},
					{ID: "A", TimeSlots: []TimeSlotImport{{Day: "Funday", Start: "09:00", End: "10:00"}}},
					{ID: "", Capacity: ptrInt(-5)},
				},
			},
			{Code: "CS101"},
			{Code: ""},
		},
	}

	errs := ValidateCatalog(schema)

	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	assert.Equal(t, []string{
		"courses[0].credits must be non-negative, got -1",
		"courses[0].prereqs: course cannot require itself",
		`courses[0].sections[0].type: invalid value "SEM"`,
		"courses[0].sections[0].timeSlots[0]: slot Mon startMin 600 must be before endMin 540",
		`courses[0].sections[1].id: duplicate section id "A"`,
		`courses[0].sections[1].timeSlots[0]: unknown weekday "Funday"`,
		"courses[0].sections[2].id is required",
		"courses[0].sections[2].capacity must be non-negative",
		"courses[0].sections[2].timeSlots: at least one timeslot is required",
		`courses[1].code: duplicate code "CS101"`,
		"courses[2].code is required",
	}, msgs)
}

func TestValidateCatalog_SlotBounds(t *testing.T) {
	tests := []struct {
		name string
		slot TimeSlotImport
		want string
	}{
		{"missing start", TimeSlotImport{Day: "Tue", End: "10:00"}, "start is required"},
		{"bad clock", TimeSlotImport{Day: "Tue", Start: "9am", End: "10:00"}, `start: invalid time "9am" (expected HH:MM or minutes)`},
		{"past midnight", TimeSlotImport{Day: "Tue", StartMin: ptrInt(1400), EndMin: ptrInt(1500)}, "slot Tue 1400-1500 outside 0-1440"},
		{"negative start", TimeSlotImport{Day: "Tue", StartMin: ptrInt(-10), EndMin: ptrInt(30)}, "slot Tue -10-30 outside 0-1440"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := validMinimalCatalog()
			schema.Courses[0].Sections[0].TimeSlots = []TimeSlotImport{tt.slot}

			errs := ValidateCatalog(schema)
			require.Len(t, errs, 1)
			assert.EqualError(t, errs[0], "courses[0].sections[0].timeSlots[0]: "+tt.want)
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"9:05", 545, false},
		{"13:45", 825, false},
		{"24:00", 1440, false},
		{"540", 540, false},
		{" 600 ", 600, false},
		{"24:30", 0, true},
		{"12:7", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
