package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Razboth/Servicedesk-sub005/internal/calendar"
)

func TestNormalizeForServerAccess(t *testing.T) {
	all := NewCapabilitySet(WorkShiftTypes...)

	server := NormalizeForServerAccess(all, true)
	assert.True(t, server.Can(ShiftNightWeekday))
	assert.True(t, server.Can(ShiftNightWeekend))
	assert.True(t, server.Can(ShiftStandbyOnCall))
	assert.False(t, server.Can(ShiftDayWeekend))
	assert.False(t, server.Can(ShiftStandbyBranch))

	nonServer := NormalizeForServerAccess(all, false)
	assert.True(t, nonServer.Can(ShiftNightWeekday))
	assert.True(t, nonServer.Can(ShiftDayWeekend))
	assert.True(t, nonServer.Can(ShiftNightWeekend))
	assert.True(t, nonServer.Can(ShiftStandbyBranch))
	assert.False(t, nonServer.Can(ShiftStandbyOnCall))
}

func TestProfileNormalize(t *testing.T) {
	p := StaffProfile{
		Capabilities:              NewCapabilitySet(WorkShiftTypes...),
		HasServerAccess:           true,
		MaxNightShiftsPerMonth:    -1,
		MinDaysBetweenNightShifts: 0,
	}
	p.Normalize()

	assert.False(t, p.Capabilities.Can(ShiftDayWeekend))
	assert.False(t, p.Capabilities.Can(ShiftStandbyBranch))
	assert.Equal(t, 0, p.MaxNightShiftsPerMonth)
	assert.Equal(t, 1, p.MinDaysBetweenNightShifts)
	assert.Equal(t, p.Capabilities.Types(), p.CapabilityTypes)
}

func TestSchedulableTypes(t *testing.T) {
	assert.Equal(t,
		[]ShiftType{ShiftNightWeekday, ShiftStandbyOnCall, ShiftStandbyBranch},
		SchedulableTypes(calendar.ClassWeekday))
	assert.Equal(t,
		[]ShiftType{ShiftDayWeekend, ShiftNightWeekend, ShiftStandbyOnCall, ShiftStandbyBranch},
		SchedulableTypes(calendar.ClassWeekendHoliday))
}

func TestViolatesSabbath(t *testing.T) {
	// 2025-06-06 is a Friday
	friday := calendar.NewDate(2025, 6, 6)
	saturday := calendar.NewDate(2025, 6, 7)
	thursday := calendar.NewDate(2025, 6, 5)

	require.Equal(t, time.Friday, friday.Weekday())

	// Friday: only shifts running past sunset overlap the window
	assert.True(t, ViolatesSabbath(friday, ShiftNightWeekday))
	assert.True(t, ViolatesSabbath(friday, ShiftStandbyBranch))
	assert.False(t, ViolatesSabbath(friday, ShiftDayWeekend))

	// Saturday: shifts starting before sunset overlap, a night shift does not
	assert.True(t, ViolatesSabbath(saturday, ShiftDayWeekend))
	assert.True(t, ViolatesSabbath(saturday, ShiftStandbyOnCall))
	assert.False(t, ViolatesSabbath(saturday, ShiftNightWeekend))

	assert.False(t, ViolatesSabbath(thursday, ShiftNightWeekday))
	assert.False(t, ViolatesSabbath(saturday, ShiftOff))
}

func TestCapabilitySetTypes(t *testing.T) {
	set := NewCapabilitySet(ShiftNightWeekend, ShiftNightWeekday)
	assert.Equal(t, []ShiftType{ShiftNightWeekday, ShiftNightWeekend}, set.Types())

	assert.False(t, set.Can(ShiftOff), "sentinel types are never capabilities")
	assert.Equal(t, set, set.With(ShiftLeave))
}

func TestPreferenceMatches(t *testing.T) {
	assert.True(t, PreferenceNight.Matches(ShiftNightWeekday))
	assert.False(t, PreferenceNight.Matches(ShiftDayWeekend))
	assert.True(t, PreferenceDay.Matches(ShiftStandbyBranch))
	assert.False(t, PreferenceDay.Matches(ShiftNightWeekend))
	assert.False(t, PreferenceNone.Matches(ShiftNightWeekday))
	assert.False(t, PreferenceDay.Matches(ShiftOff))
}
