package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

// ErrProfileHasAssignments guards profile deletion: a profile owning any
// shift assignment must not be removed.
var ErrProfileHasAssignments = errors.New("staff profile still owns shift assignments")

// ListStaffProfiles returns the profiles for a branch hydrated with the user
// directory fields and the owned-assignment count. With activeOnly the result
// is the generator's eligible set.
func (r *Repository) ListStaffProfiles(branchID string, activeOnly bool) ([]domain.StaffProfile, error) {
	query := `
		SELECT
			sp.id, sp.user_id, sp.branch_id, u.full_name, u.email,
			sp.capabilities, sp.has_server_access, sp.has_sabbath_restriction,
			sp.max_night_shifts_per_month, sp.min_days_between_night_shifts,
			sp.preferred_shift_type, sp.is_active, sp.created_at, sp.version,
			(SELECT COUNT(*) FROM shift_assignments sa WHERE sa.staff_profile_id = sp.id) AS assignment_count
		FROM staff_profiles sp
		JOIN users u ON u.id = sp.user_id
		WHERE sp.branch_id = $1 AND (NOT $2 OR sp.is_active)
		ORDER BY sp.is_active DESC, u.full_name ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, branchID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]domain.StaffProfile, 0)
	for rows.Next() {
		var p domain.StaffProfile
		var capabilities int16
		dst := []any{
			&p.ID, &p.UserID, &p.BranchID, &p.FullName, &p.Email,
			&capabilities, &p.HasServerAccess, &p.HasSabbathRestriction,
			&p.MaxNightShiftsPerMonth, &p.MinDaysBetweenNightShifts,
			&p.PreferredShiftType, &p.IsActive, &p.CreatedAt, &p.Version,
			&p.AssignmentCount,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		p.Capabilities = domain.CapabilitySet(capabilities)
		p.CapabilityTypes = p.Capabilities.Types()
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *Repository) GetStaffProfileByID(id string) (*domain.StaffProfile, error) {
	query := `
		SELECT
			sp.user_id, sp.branch_id, u.full_name, u.email,
			sp.capabilities, sp.has_server_access, sp.has_sabbath_restriction,
			sp.max_night_shifts_per_month, sp.min_days_between_night_shifts,
			sp.preferred_shift_type, sp.is_active, sp.created_at, sp.version,
			(SELECT COUNT(*) FROM shift_assignments sa WHERE sa.staff_profile_id = sp.id) AS assignment_count
		FROM staff_profiles sp
		JOIN users u ON u.id = sp.user_id
		WHERE sp.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	p := &domain.StaffProfile{ID: id}
	var capabilities int16
	dst := []any{
		&p.UserID, &p.BranchID, &p.FullName, &p.Email,
		&capabilities, &p.HasServerAccess, &p.HasSabbathRestriction,
		&p.MaxNightShiftsPerMonth, &p.MinDaysBetweenNightShifts,
		&p.PreferredShiftType, &p.IsActive, &p.CreatedAt, &p.Version,
		&p.AssignmentCount,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	p.Capabilities = domain.CapabilitySet(capabilities)
	p.CapabilityTypes = p.Capabilities.Types()

	return p, nil
}

// UpsertStaffProfile creates or updates the single profile a user holds per
// branch. Callers normalize the profile first so the server-access rule is
// already applied to the capability mask.
func (r *Repository) UpsertStaffProfile(p *domain.StaffProfile) error {
	query := `
		INSERT INTO staff_profiles (
			user_id, branch_id, capabilities, has_server_access, has_sabbath_restriction,
			max_night_shifts_per_month, min_days_between_night_shifts, preferred_shift_type, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			capabilities = EXCLUDED.capabilities,
			has_server_access = EXCLUDED.has_server_access,
			has_sabbath_restriction = EXCLUDED.has_sabbath_restriction,
			max_night_shifts_per_month = EXCLUDED.max_night_shifts_per_month,
			min_days_between_night_shifts = EXCLUDED.min_days_between_night_shifts,
			preferred_shift_type = EXCLUDED.preferred_shift_type,
			is_active = EXCLUDED.is_active,
			version = staff_profiles.version + 1
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		p.UserID, p.BranchID, int16(p.Capabilities), p.HasServerAccess, p.HasSabbathRestriction,
		p.MaxNightShiftsPerMonth, p.MinDaysBetweenNightShifts, p.PreferredShiftType, p.IsActive,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.Version); err != nil {
		return err
	}

	return nil
}

// DeleteStaffProfile removes a profile, failing with ErrProfileHasAssignments
// while any shift assignment still references it. The check and the delete
// run in one transaction so a concurrent assignment cannot slip in between.
func (r *Repository) DeleteStaffProfile(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM shift_assignments WHERE staff_profile_id = $1`, id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrProfileHasAssignments
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM staff_profiles WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit()
}
