package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/courseplan/internal/db"
	"github.com/alexanderramin/courseplan/internal/domain"
)

type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.SavedPlan) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO plans (id, created_at, request_json, response_json, total_credits, score)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, formatTime(p.CreatedAt), p.RequestJSON, p.ResponseJSON, p.TotalCredits, p.Score)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.SavedPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, created_at, request_json, response_json, total_credits, score
		FROM plans WHERE id = ?`, id)
	p, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plan %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

// ListRecent returns up to limit plans, newest first.
func (r *SQLitePlanRepo) ListRecent(ctx context.Context, limit int) ([]domain.SavedPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, request_json, response_json, total_credits, score
		FROM plans ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []domain.SavedPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(s rowScanner) (*domain.SavedPlan, error) {
	var (
		p         domain.SavedPlan
		createdAt string
	)
	if err := s.Scan(&p.ID, &createdAt, &p.RequestJSON, &p.ResponseJSON, &p.TotalCredits, &p.Score); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing plan %s created_at: %w", p.ID, err)
	}
	p.CreatedAt = t
	return &p, nil
}
