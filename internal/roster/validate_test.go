package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

func codesOf(violations []Violation) []ViolationCode {
	out := make([]ViolationCode, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Code)
	}
	return out
}

func TestValidateCleanRoster(t *testing.T) {
	p := testProfile("p1", domain.ShiftNightWeekday)
	r := testRoster(night("a1", "p1", 1), off("o1", "p1", 2))

	assert.Empty(t, Validate(r, []domain.StaffProfile{p}, nil))
}

func TestValidateDoubleBooking(t *testing.T) {
	p := testProfile("p1", domain.ShiftNightWeekday, domain.ShiftStandbyBranch)
	r := testRoster(
		night("a1", "p1", 1), off("o1", "p1", 2),
		domain.ShiftAssignment{ID: "a2", StaffProfileID: "p1", Date: sept(1), ShiftType: domain.ShiftStandbyBranch},
	)

	violations := Validate(r, []domain.StaffProfile{p}, nil)
	assert.Contains(t, codesOf(violations), ViolationDoubleBooking)
}

func TestValidateLeaveConflict(t *testing.T) {
	p := testProfile("p1", domain.ShiftNightWeekday)
	overlay := BuildOverlay([]domain.LeaveRequest{{
		ID: "l1", StaffProfileID: "p1", StartDate: sept(1), EndDate: sept(1), Status: domain.LeaveApproved,
	}}, 9, 2025)
	r := testRoster(night("a1", "p1", 1), off("o1", "p1", 2))

	violations := Validate(r, []domain.StaffProfile{p}, overlay)
	assert.Contains(t, codesOf(violations), ViolationLeaveConflict)
}

func TestValidateCapabilityMismatch(t *testing.T) {
	p := testProfile("p1", domain.ShiftStandbyBranch)
	r := testRoster(night("a1", "p1", 1), off("o1", "p1", 2))

	violations := Validate(r, []domain.StaffProfile{p}, nil)
	assert.Contains(t, codesOf(violations), ViolationCapabilityMismatch)
}

func TestValidateNightCapAndGap(t *testing.T) {
	p := testProfile("p1", domain.ShiftNightWeekday)
	p.MaxNightShiftsPerMonth = 1
	p.MinDaysBetweenNightShifts = 5
	r := testRoster(
		night("a1", "p1", 1), off("o1", "p1", 2),
		night("a2", "p1", 3), off("o2", "p1", 4),
	)

	codes := codesOf(Validate(r, []domain.StaffProfile{p}, nil))
	assert.Contains(t, codes, ViolationNightCapExceeded)
	assert.Contains(t, codes, ViolationNightGapTooShort)
}

func TestValidateSabbathConflict(t *testing.T) {
	p := testProfile("p1", domain.ShiftNightWeekday)
	p.HasSabbathRestriction = true
	// 2025-09-05 is a Friday
	r := testRoster(night("a1", "p1", 5), off("o1", "p1", 6))

	violations := Validate(r, []domain.StaffProfile{p}, nil)
	assert.Contains(t, codesOf(violations), ViolationSabbathConflict)
}

func TestValidateMissingOffPairing(t *testing.T) {
	p := testProfile("p1", domain.ShiftNightWeekday)
	r := testRoster(night("a1", "p1", 1))

	violations := Validate(r, []domain.StaffProfile{p}, nil)
	assert.Contains(t, codesOf(violations), ViolationMissingOffPairing)

	// a night on the last day needs no marker, the rest day falls outside
	// the month
	r2 := testRoster(night("a1", "p1", 30))
	assert.Empty(t, Validate(r2, []domain.StaffProfile{p}, nil))
}

func TestValidateUnknownProfile(t *testing.T) {
	r := testRoster(night("a1", "ghost", 1))

	violations := Validate(r, nil, nil)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationUnknownProfile, violations[0].Code)
}
