package domain

import (
	"fmt"
	"strings"
)

type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// Weekdays is the canonical Monday-first ordering used wherever per-day
// results must be produced in a stable order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Index returns the position of d in Weekdays, or -1 for an unknown day.
func (d Weekday) Index() int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return -1
}

func (d Weekday) Valid() bool {
	return d.Index() >= 0
}

// ParseWeekday accepts the three-letter form ("Mon") case-insensitively,
// as well as full English names ("monday").
func ParseWeekday(s string) (Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if len(key) >= 3 {
		for _, w := range Weekdays {
			if strings.HasPrefix(fullDayNames[w], key) {
				return w, nil
			}
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

var fullDayNames = map[Weekday]string{
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
	Sunday:    "sunday",
}

type SectionType string

const (
	SectionLecture    SectionType = "LEC"
	SectionLab        SectionType = "LAB"
	SectionDiscussion SectionType = "DIS"
)

// ValidSectionTypes is the accepted set of section type strings. An empty
// type is also allowed and means "unspecified".
var ValidSectionTypes = map[string]bool{
	"LEC": true, "LAB": true, "DIS": true,
}

// MinutesPerDay bounds TimeSlot minutes.
const MinutesPerDay = 24 * 60
