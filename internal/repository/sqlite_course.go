package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/courseplan/internal/db"
	"github.com/alexanderramin/courseplan/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo using a SQLite database.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(conn db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: conn}
}

// ReplaceAll deletes the stored catalog and writes courses in order. Callers
// run it inside a UnitOfWork so a failed import leaves the old catalog intact.
func (r *SQLiteCourseRepo) ReplaceAll(ctx context.Context, courses []domain.Course) error {
	// Cascades to prereqs, sections and time_slots.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("clearing courses: %w", err)
	}

	for i, c := range courses {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO courses (code, title, credits, difficulty, avg_hours_per_week, tags, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			c.Code, c.Title, c.Credits, c.Difficulty, c.AvgHoursPerWeek, joinTags(c.Tags), i)
		if err != nil {
			return fmt.Errorf("inserting course %s: %w", c.Code, err)
		}

		for j, p := range c.Prereqs {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO course_prereqs (course_code, prereq_code, position) VALUES (?, ?, ?)`,
				c.Code, p, j)
			if err != nil {
				return fmt.Errorf("inserting prereq %s of %s: %w", p, c.Code, err)
			}
		}

		for j, s := range c.Sections {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO sections (course_code, section_id, type, instructor, capacity, position)
				VALUES (?, ?, ?, ?, ?, ?)`,
				c.Code, s.ID, string(s.Type), s.Instructor, nullableIntToValue(s.Capacity), j)
			if err != nil {
				return fmt.Errorf("inserting section %s:%s: %w", c.Code, s.ID, err)
			}

			for k, ts := range s.TimeSlots {
				_, err := r.db.ExecContext(ctx,
					`INSERT INTO time_slots (course_code, section_id, day, start_min, end_min, location, position)
					VALUES (?, ?, ?, ?, ?, ?, ?)`,
					c.Code, s.ID, string(ts.Day), ts.StartMin, ts.EndMin, ts.Location, k)
				if err != nil {
					return fmt.Errorf("inserting timeslot %d of %s:%s: %w", k, c.Code, s.ID, err)
				}
			}
		}
	}
	return nil
}

// List loads the full catalog. Each table is read in one ordered pass and the
// rows are stitched back into courses.
func (r *SQLiteCourseRepo) List(ctx context.Context) ([]domain.Course, error) {
	courses, index, err := r.listCourses(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.attachPrereqs(ctx, courses, index); err != nil {
		return nil, err
	}
	sectionIndex, err := r.attachSections(ctx, courses, index)
	if err != nil {
		return nil, err
	}
	if err := r.attachTimeSlots(ctx, courses, sectionIndex); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting courses: %w", err)
	}
	return n, nil
}

type sectionKey struct {
	course, section string
}

type sectionRef struct {
	course, section int
}

func (r *SQLiteCourseRepo) listCourses(ctx context.Context) ([]domain.Course, map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT code, title, credits, difficulty, avg_hours_per_week, tags FROM courses ORDER BY position, code`)
	if err != nil {
		return nil, nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []domain.Course
	index := make(map[string]int)
	for rows.Next() {
		var (
			c    domain.Course
			tags string
		)
		if err := rows.Scan(&c.Code, &c.Title, &c.Credits, &c.Difficulty, &c.AvgHoursPerWeek, &tags); err != nil {
			return nil, nil, fmt.Errorf("scanning course: %w", err)
		}
		c.Tags = splitTags(tags)
		index[c.Code] = len(courses)
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, index, nil
}

func (r *SQLiteCourseRepo) attachPrereqs(ctx context.Context, courses []domain.Course, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_code, prereq_code FROM course_prereqs ORDER BY course_code, position`)
	if err != nil {
		return fmt.Errorf("listing prereqs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code, prereq string
		if err := rows.Scan(&code, &prereq); err != nil {
			return fmt.Errorf("scanning prereq: %w", err)
		}
		if i, ok := index[code]; ok {
			courses[i].Prereqs = append(courses[i].Prereqs, prereq)
		}
	}
	return rows.Err()
}

func (r *SQLiteCourseRepo) attachSections(ctx context.Context, courses []domain.Course, index map[string]int) (map[sectionKey]sectionRef, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_code, section_id, type, instructor, capacity FROM sections ORDER BY course_code, position`)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	refs := make(map[sectionKey]sectionRef)
	for rows.Next() {
		var (
			code     string
			s        domain.Section
			typ      string
			capacity sql.NullInt64
		)
		if err := rows.Scan(&code, &s.ID, &typ, &s.Instructor, &capacity); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		s.Type = domain.SectionType(typ)
		s.Capacity = nullIntToPtr(capacity)

		ci, ok := index[code]
		if !ok {
			continue
		}
		refs[sectionKey{code, s.ID}] = sectionRef{course: ci, section: len(courses[ci].Sections)}
		courses[ci].Sections = append(courses[ci].Sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	return refs, nil
}

func (r *SQLiteCourseRepo) attachTimeSlots(ctx context.Context, courses []domain.Course, refs map[sectionKey]sectionRef) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_code, section_id, day, start_min, end_min, location
		FROM time_slots ORDER BY course_code, section_id, position`)
	if err != nil {
		return fmt.Errorf("listing timeslots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			code, sectionID, day string
			ts                   domain.TimeSlot
		)
		if err := rows.Scan(&code, &sectionID, &day, &ts.StartMin, &ts.EndMin, &ts.Location); err != nil {
			return fmt.Errorf("scanning timeslot: %w", err)
		}
		ts.Day = domain.Weekday(day)

		ref, ok := refs[sectionKey{code, sectionID}]
		if !ok {
			continue
		}
		sec := &courses[ref.course].Sections[ref.section]
		sec.TimeSlots = append(sec.TimeSlots, ts)
	}
	return rows.Err()
}
