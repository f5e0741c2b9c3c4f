package domain

import (
	"time"

	"github.com/Razboth/Servicedesk-sub005/internal/calendar"
)

type ShiftType string

const (
	ShiftNightWeekday  ShiftType = "NIGHT_WEEKDAY"
	ShiftDayWeekend    ShiftType = "DAY_WEEKEND"
	ShiftNightWeekend  ShiftType = "NIGHT_WEEKEND"
	ShiftStandbyOnCall ShiftType = "STANDBY_ONCALL"
	ShiftStandbyBranch ShiftType = "STANDBY_BRANCH"

	// sentinel types, never schedulable directly
	ShiftOff   ShiftType = "OFF"
	ShiftLeave ShiftType = "LEAVE"
)

// WorkShiftTypes lists the five schedulable types in taxonomy order. The order
// matters: it is the slot order the generator walks each day and the bit order
// of CapabilitySet.
var WorkShiftTypes = []ShiftType{
	ShiftNightWeekday,
	ShiftDayWeekend,
	ShiftNightWeekend,
	ShiftStandbyOnCall,
	ShiftStandbyBranch,
}

func (t ShiftType) IsWork() bool {
	switch t {
	case ShiftNightWeekday, ShiftDayWeekend, ShiftNightWeekend, ShiftStandbyOnCall, ShiftStandbyBranch:
		return true
	}
	return false
}

func (t ShiftType) IsNight() bool {
	return t == ShiftNightWeekday || t == ShiftNightWeekend
}

func (t ShiftType) Valid() bool {
	return t.IsWork() || t == ShiftOff || t == ShiftLeave
}

// SchedulableOn reports whether the slot for this type exists on a day of the
// given class. Type 1 runs on weekdays only, types 2 and 3 on weekends and
// holidays only, the standby types every day.
func (t ShiftType) SchedulableOn(class calendar.DayClass) bool {
	switch t {
	case ShiftNightWeekday:
		return class == calendar.ClassWeekday
	case ShiftDayWeekend, ShiftNightWeekend:
		return class == calendar.ClassWeekendHoliday
	case ShiftStandbyOnCall, ShiftStandbyBranch:
		return true
	}
	return false
}

// SchedulableTypes returns the coverage slots required on a day of the given
// class, in taxonomy order.
func SchedulableTypes(class calendar.DayClass) []ShiftType {
	types := make([]ShiftType, 0, len(WorkShiftTypes))
	for _, t := range WorkShiftTypes {
		if t.SchedulableOn(class) {
			types = append(types, t)
		}
	}
	return types
}

// window returns the shift's start and end hour on its calendar day. Night
// shifts run into the following day, standby types cover the whole day.
func (t ShiftType) window() (startHour, endHour int) {
	switch t {
	case ShiftNightWeekday, ShiftNightWeekend:
		return 18, 32 // 18:00 until 08:00 the next day
	case ShiftDayWeekend:
		return 8, 18
	default:
		return 0, 24
	}
}

// sunset approximation used for the Sabbath window; the legacy system keys the
// restriction off fixed 18:00 boundaries rather than astronomical sunset.
const sunsetHour = 18

// ViolatesSabbath reports whether a shift of type t on day d overlaps the
// Friday-sunset-to-Saturday-sunset window.
func ViolatesSabbath(d calendar.Date, t ShiftType) bool {
	if !t.IsWork() {
		return false
	}
	start, end := t.window()
	switch d.Weekday() {
	case time.Friday:
		// window opens Friday 18:00
		return end > sunsetHour
	case time.Saturday:
		// window closes Saturday 18:00
		return start < sunsetHour
	default:
		return false
	}
}

// CapabilitySet is a bitmask over the five work shift types, replacing the
// legacy canWorkType1..5 boolean columns so the server-access rule is a single
// checked transition.
type CapabilitySet uint8

func capabilityBit(t ShiftType) CapabilitySet {
	for i, wt := range WorkShiftTypes {
		if wt == t {
			return 1 << i
		}
	}
	return 0
}

func NewCapabilitySet(types ...ShiftType) CapabilitySet {
	var set CapabilitySet
	for _, t := range types {
		set |= capabilityBit(t)
	}
	return set
}

func (c CapabilitySet) Can(t ShiftType) bool {
	bit := capabilityBit(t)
	return bit != 0 && c&bit != 0
}

func (c CapabilitySet) With(t ShiftType) CapabilitySet {
	return c | capabilityBit(t)
}

func (c CapabilitySet) Without(t ShiftType) CapabilitySet {
	return c &^ capabilityBit(t)
}

// Types expands the mask back into taxonomy order, mostly for JSON payloads.
func (c CapabilitySet) Types() []ShiftType {
	types := make([]ShiftType, 0, len(WorkShiftTypes))
	for _, t := range WorkShiftTypes {
		if c.Can(t) {
			types = append(types, t)
		}
	}
	return types
}

// NormalizeForServerAccess enforces the mutual-exclusion rule between server
// access and capability flags: server staff lose DAY_WEEKEND and
// STANDBY_BRANCH, non-server staff lose STANDBY_ONCALL. Disallowed flags are
// silently zeroed rather than rejected, matching manager intent when flipping
// a profile between server and non-server.
func NormalizeForServerAccess(c CapabilitySet, hasServerAccess bool) CapabilitySet {
	if hasServerAccess {
		return c.Without(ShiftDayWeekend).Without(ShiftStandbyBranch)
	}
	return c.Without(ShiftStandbyOnCall)
}
