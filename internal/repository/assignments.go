package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Razboth/Servicedesk-sub005/internal/calendar"
	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

func (r *Repository) ListAssignmentsForSchedule(scheduleID string) ([]domain.ShiftAssignment, error) {
	query := `
		SELECT id, staff_profile_id, date, shift_type
		FROM shift_assignments WHERE schedule_id = $1
		ORDER BY date ASC, shift_type ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]domain.ShiftAssignment, 0)
	for rows.Next() {
		a := domain.ShiftAssignment{ScheduleID: scheduleID}
		var date time.Time
		if err := rows.Scan(&a.ID, &a.StaffProfileID, &date, &a.ShiftType); err != nil {
			return nil, err
		}
		a.Date = calendar.FromTime(date)
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *Repository) CreateAssignment(a *domain.ShiftAssignment) error {
	query := `
		INSERT INTO shift_assignments (schedule_id, staff_profile_id, date, shift_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{a.ScheduleID, a.StaffProfileID, a.Date.Time(), a.ShiftType}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&a.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAssignment(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, `DELETE FROM shift_assignments WHERE id = $1`, id)
	return err
}

// DeleteAssignmentsForSchedule clears the persisted roster for one schedule.
// LEAVE rows are excluded defensively even though the engine never persists
// them. This is the delete phase of clear-then-recreate: a failure here must
// abort the commit, so the error goes straight up.
func (r *Repository) DeleteAssignmentsForSchedule(scheduleID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, `DELETE FROM shift_assignments WHERE schedule_id = $1 AND shift_type <> 'LEAVE'`, scheduleID)
	return err
}

type BatchResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// BatchCreateAssignments is the recreate phase of clear-then-recreate. Rows
// are inserted one at a time so a bad row fails alone: successes stay
// persisted and failures are collected per row rather than aborting the
// batch.
func (r *Repository) BatchCreateAssignments(scheduleID string, assignments []domain.ShiftAssignment) *BatchResult {
	result := &BatchResult{Errors: []string{}}

	for _, a := range assignments {
		row := a
		row.ScheduleID = scheduleID
		if err := r.CreateAssignment(&row); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s %s %s: %v", row.Date, row.ShiftType, row.StaffProfileID, err))
			continue
		}
		result.Created++
	}

	return result
}
