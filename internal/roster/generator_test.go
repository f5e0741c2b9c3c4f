package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Razboth/Servicedesk-sub005/internal/calendar"
	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

// testProfile builds an active profile with the given capabilities; the
// counters default to values that never constrain a short scenario.
func testProfile(id string, caps ...domain.ShiftType) domain.StaffProfile {
	return domain.StaffProfile{
		ID:                        id,
		FullName:                  "Staff " + id,
		Capabilities:              domain.NewCapabilitySet(caps...),
		MaxNightShiftsPerMonth:    31,
		MinDaysBetweenNightShifts: 1,
		IsActive:                  true,
	}
}

func gapsOfType(gaps []Gap, t domain.ShiftType) []Gap {
	var out []Gap
	for _, g := range gaps {
		if g.ShiftType == t {
			out = append(out, g)
		}
	}
	return out
}

func assignmentsOfType(r Roster, t domain.ShiftType) []domain.ShiftAssignment {
	var out []domain.ShiftAssignment
	for _, a := range r.Assignments {
		if a.ShiftType == t {
			out = append(out, a)
		}
	}
	return out
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	g := NewGenerator(nil, nil, nil)

	_, err := g.Generate("", 9, 2025)
	assert.Equal(t, CodeValidation, CodeOf(err))

	_, err = g.Generate("HQ", 13, 2025)
	assert.Equal(t, CodeValidation, CodeOf(err))

	_, err = g.Generate("HQ", 9, 1999)
	assert.Equal(t, CodeValidation, CodeOf(err))
}

func TestGenerateNightCapAndOffPairing(t *testing.T) {
	// September 2025 starts on a Monday and has 22 weekdays. A single
	// profile that can only work weekday nights, capped at 5 per month
	// with the minimum gap, fills the first five weekday night slots.
	p := testProfile("p1", domain.ShiftNightWeekday)
	p.MaxNightShiftsPerMonth = 5

	g := NewGenerator([]domain.StaffProfile{p}, nil, nil)
	result, err := g.Generate("HQ", 9, 2025)
	require.NoError(t, err)

	nights := assignmentsOfType(result.Roster, domain.ShiftNightWeekday)
	require.Len(t, nights, 5)
	for i, a := range nights {
		assert.Equal(t, "p1", a.StaffProfileID)
		assert.Equal(t, calendar.NewDate(2025, 9, i+1), a.Date)
	}

	// every night shift is paired with an OFF marker the next day
	offs := assignmentsOfType(result.Roster, domain.ShiftOff)
	require.Len(t, offs, 5)
	for i, a := range offs {
		assert.Equal(t, "p1", a.StaffProfileID)
		assert.Equal(t, calendar.NewDate(2025, 9, i+2), a.Date)
	}

	// 17 weekday night slots stay unfilled once the cap is reached
	assert.Len(t, gapsOfType(result.Gaps, domain.ShiftNightWeekday), 17)
	assert.Len(t, gapsOfType(result.Gaps, domain.ShiftDayWeekend), 8)
	assert.Len(t, gapsOfType(result.Gaps, domain.ShiftStandbyOnCall), 30)
}

func TestGenerateOffPairingClampedAtMonthEnd(t *testing.T) {
	// 2025-09-30 is a Tuesday; force the only night onto the last day by
	// capping at 1 and blocking every earlier weekday with leave.
	p := testProfile("p1", domain.ShiftNightWeekday)
	p.MaxNightShiftsPerMonth = 1

	overlay := BuildOverlay([]domain.LeaveRequest{{
		ID:             "l1",
		StaffProfileID: "p1",
		StartDate:      calendar.NewDate(2025, 9, 1),
		EndDate:        calendar.NewDate(2025, 9, 29),
		Status:         domain.LeaveApproved,
	}}, 9, 2025)

	g := NewGenerator([]domain.StaffProfile{p}, overlay, nil)
	result, err := g.Generate("HQ", 9, 2025)
	require.NoError(t, err)

	nights := assignmentsOfType(result.Roster, domain.ShiftNightWeekday)
	require.Len(t, nights, 1)
	assert.Equal(t, calendar.NewDate(2025, 9, 30), nights[0].Date)

	// no OFF row spills into October
	assert.Empty(t, assignmentsOfType(result.Roster, domain.ShiftOff))
}

func TestGenerateMinNightGap(t *testing.T) {
	p := testProfile("p1", domain.ShiftNightWeekday)
	p.MinDaysBetweenNightShifts = 3

	g := NewGenerator([]domain.StaffProfile{p}, nil, nil)
	result, err := g.Generate("HQ", 9, 2025)
	require.NoError(t, err)

	nights := assignmentsOfType(result.Roster, domain.ShiftNightWeekday)
	require.NotEmpty(t, nights)
	for i := 1; i < len(nights); i++ {
		gap := calendar.DaysBetween(nights[i-1].Date, nights[i].Date)
		assert.GreaterOrEqual(t, gap, 3)
	}
}

func TestGenerateBalancesLoadAndPrefersMatchingShift(t *testing.T) {
	// two interchangeable standby profiles; p2's day preference wins the
	// first slot, then the load counter alternates them
	p1 := testProfile("p1", domain.ShiftStandbyBranch)
	p2 := testProfile("p2", domain.ShiftStandbyBranch)
	p2.PreferredShiftType = domain.PreferenceDay

	g := NewGenerator([]domain.StaffProfile{p1, p2}, nil, nil)
	result, err := g.Generate("HQ", 9, 2025)
	require.NoError(t, err)

	standby := assignmentsOfType(result.Roster, domain.ShiftStandbyBranch)
	require.Len(t, standby, 30)
	assert.Equal(t, "p2", standby[0].StaffProfileID)
	assert.Equal(t, "p1", standby[1].StaffProfileID)

	counts := map[string]int{}
	for _, a := range standby {
		counts[a.StaffProfileID]++
	}
	assert.Equal(t, 15, counts["p1"])
	assert.Equal(t, 15, counts["p2"])
}

func TestGenerateSkipsSabbathRestrictedStaff(t *testing.T) {
	p := testProfile("p1", domain.ShiftStandbyBranch)
	p.HasSabbathRestriction = true

	g := NewGenerator([]domain.StaffProfile{p}, nil, nil)
	result, err := g.Generate("HQ", 9, 2025)
	require.NoError(t, err)

	for _, a := range assignmentsOfType(result.Roster, domain.ShiftStandbyBranch) {
		wd := a.Date.Weekday()
		assert.NotEqual(t, time.Friday, wd)
		assert.NotEqual(t, time.Saturday, wd)
	}
	// Fridays and Saturdays surface as gaps instead
	gapDays := map[calendar.Date]bool{}
	for _, g := range gapsOfType(result.Gaps, domain.ShiftStandbyBranch) {
		gapDays[g.Date] = true
	}
	assert.True(t, gapDays[calendar.NewDate(2025, 9, 5)])
	assert.True(t, gapDays[calendar.NewDate(2025, 9, 6)])
}

func TestGenerateHolidayUsesWeekendSlots(t *testing.T) {
	// 2025-09-17 is a Wednesday declared a holiday: it gets weekend-class
	// slots instead of the weekday night slot
	p := testProfile("p1", domain.ShiftDayWeekend)
	holiday := calendar.NewDate(2025, 9, 17)

	g := NewGenerator([]domain.StaffProfile{p}, nil, []calendar.Date{holiday})
	result, err := g.Generate("HQ", 9, 2025)
	require.NoError(t, err)

	var onHoliday []domain.ShiftType
	for _, a := range result.Roster.Assignments {
		if a.Date == holiday {
			onHoliday = append(onHoliday, a.ShiftType)
		}
	}
	assert.Equal(t, []domain.ShiftType{domain.ShiftDayWeekend}, onHoliday)

	for _, gap := range result.Gaps {
		if gap.Date == holiday {
			assert.NotEqual(t, domain.ShiftNightWeekday, gap.ShiftType)
		}
	}
}

func TestGenerateOutputPassesValidation(t *testing.T) {
	profiles := []domain.StaffProfile{
		testProfile("p1", domain.ShiftNightWeekday, domain.ShiftNightWeekend),
		testProfile("p2", domain.ShiftNightWeekday, domain.ShiftDayWeekend),
		testProfile("p3", domain.ShiftStandbyBranch, domain.ShiftDayWeekend),
		testProfile("p4", domain.ShiftStandbyOnCall),
	}
	profiles[0].MaxNightShiftsPerMonth = 8
	profiles[0].MinDaysBetweenNightShifts = 2
	profiles[1].MaxNightShiftsPerMonth = 10

	overlay := BuildOverlay([]domain.LeaveRequest{{
		ID:             "l1",
		StaffProfileID: "p3",
		StartDate:      calendar.NewDate(2025, 9, 10),
		EndDate:        calendar.NewDate(2025, 9, 14),
		Status:         domain.LeaveApproved,
	}}, 9, 2025)

	g := NewGenerator(profiles, overlay, nil)
	result, err := g.Generate("HQ", 9, 2025)
	require.NoError(t, err)

	assert.Empty(t, Validate(result.Roster, profiles, overlay))
}
