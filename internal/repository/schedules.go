package repository

import (
	"context"
	"time"

	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

func (r *Repository) CreateSchedule(s *domain.Schedule) error {
	query := `
		INSERT INTO schedules (branch_id, month, year)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, s.BranchID, s.Month, s.Year).Scan(&s.ID, &s.CreatedAt, &s.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetScheduleByID(id string) (*domain.Schedule, error) {
	query := `
		SELECT branch_id, month, year, created_at, version
		FROM schedules WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	s := &domain.Schedule{ID: id}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&s.BranchID, &s.Month, &s.Year, &s.CreatedAt, &s.Version); err != nil {
		return nil, err
	}

	assignments, err := r.ListAssignmentsForSchedule(id)
	if err != nil {
		return nil, err
	}
	s.Assignments = assignments

	return s, nil
}

func (r *Repository) GetScheduleByBranchMonth(branchID string, month, year int) (*domain.Schedule, error) {
	query := `
		SELECT id, created_at, version
		FROM schedules WHERE branch_id = $1 AND month = $2 AND year = $3
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	s := &domain.Schedule{BranchID: branchID, Month: month, Year: year}
	if err := r.dbpool.QueryRowContext(ctx, query, branchID, month, year).Scan(&s.ID, &s.CreatedAt, &s.Version); err != nil {
		return nil, err
	}

	return s, nil
}

// ListSchedules returns schedule headers for a branch, newest month first,
// without hydrating assignments.
func (r *Repository) ListSchedules(branchID string) ([]*domain.Schedule, error) {
	query := `
		SELECT id, month, year, created_at, version
		FROM schedules WHERE branch_id = $1
		ORDER BY year DESC, month DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		s := &domain.Schedule{BranchID: branchID}
		if err := rows.Scan(&s.ID, &s.Month, &s.Year, &s.CreatedAt, &s.Version); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}
