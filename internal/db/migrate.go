package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list is replayed on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		code TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		credits INTEGER NOT NULL CHECK (credits >= 0),
		difficulty INTEGER NOT NULL DEFAULT 0,
		avg_hours_per_week REAL NOT NULL DEFAULT 0,
		tags TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS course_prereqs (
		course_code TEXT NOT NULL REFERENCES courses(code) ON DELETE CASCADE,
		prereq_code TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (course_code, prereq_code)
	)`,
	`CREATE TABLE IF NOT EXISTS sections (
		course_code TEXT NOT NULL REFERENCES courses(code) ON DELETE CASCADE,
		section_id TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT '',
		instructor TEXT NOT NULL DEFAULT '',
		capacity INTEGER,
		position INTEGER NOT NULL,
		PRIMARY KEY (course_code, section_id)
	)`,
	`CREATE TABLE IF NOT EXISTS time_slots (
		course_code TEXT NOT NULL,
		section_id TEXT NOT NULL,
		day TEXT NOT NULL CHECK (day IN ('Mon','Tue','Wed','Thu','Fri','Sat','Sun')),
		start_min INTEGER NOT NULL,
		end_min INTEGER NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL,
		FOREIGN KEY (course_code, section_id) REFERENCES sections(course_code, section_id) ON DELETE CASCADE,
		CHECK (start_min >= 0 AND end_min <= 1440 AND start_min < end_min)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_time_slots_section ON time_slots(course_code, section_id)`,
	`CREATE TABLE IF NOT EXISTS plans (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		request_json TEXT NOT NULL,
		response_json TEXT NOT NULL,
		total_credits INTEGER NOT NULL,
		score REAL NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_created_at ON plans(created_at)`,
}
