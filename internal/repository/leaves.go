package repository

import (
	"context"
	"time"

	"github.com/Razboth/Servicedesk-sub005/internal/calendar"
	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

// ListApprovedLeaves returns the approved leave intervals of a branch's staff
// that intersect the given month. The leave approval workflow itself is owned
// by another subsystem; this is its read boundary.
func (r *Repository) ListApprovedLeaves(branchID string, month, year int) ([]domain.LeaveRequest, error) {
	query := `
		SELECT lr.id, lr.staff_profile_id, lr.start_date, lr.end_date
		FROM leave_requests lr
		JOIN staff_profiles sp ON sp.id = lr.staff_profile_id
		WHERE sp.branch_id = $1
		  AND lr.status = 'APPROVED'
		  AND lr.start_date <= $3 AND lr.end_date >= $2
		ORDER BY lr.start_date ASC
	`

	first := calendar.FirstOfMonth(month, year).Time()
	last := calendar.LastOfMonth(month, year).Time()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, branchID, first, last)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := make([]domain.LeaveRequest, 0)
	for rows.Next() {
		leave := domain.LeaveRequest{Status: domain.LeaveApproved}
		var start, end time.Time
		if err := rows.Scan(&leave.ID, &leave.StaffProfileID, &start, &end); err != nil {
			return nil, err
		}
		leave.StartDate = calendar.FromTime(start)
		leave.EndDate = calendar.FromTime(end)
		leaves = append(leaves, leave)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return leaves, nil
}

// CreateLeaveRequest exists for seeding and tests only; in production the
// leave subsystem writes these rows.
func (r *Repository) CreateLeaveRequest(leave *domain.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (staff_profile_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{leave.StaffProfileID, leave.StartDate.Time(), leave.EndDate.Time(), leave.Status}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&leave.ID)
}
