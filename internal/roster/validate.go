package roster

import (
	"fmt"

	"github.com/Razboth/Servicedesk-sub005/internal/calendar"
	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

type ViolationCode string

const (
	ViolationDoubleBooking      ViolationCode = "DOUBLE_BOOKING"
	ViolationLeaveConflict      ViolationCode = "LEAVE_CONFLICT"
	ViolationNightCapExceeded   ViolationCode = "NIGHT_CAP_EXCEEDED"
	ViolationNightGapTooShort   ViolationCode = "NIGHT_GAP_TOO_SHORT"
	ViolationSabbathConflict    ViolationCode = "SABBATH_CONFLICT"
	ViolationCapabilityMismatch ViolationCode = "CAPABILITY_MISMATCH"
	ViolationMissingOffPairing  ViolationCode = "MISSING_OFF_PAIRING"
	ViolationUnknownProfile     ViolationCode = "UNKNOWN_PROFILE"
)

type Violation struct {
	Code           ViolationCode    `json:"code"`
	StaffProfileID string           `json:"staffProfileId"`
	Date           calendar.Date    `json:"date"`
	ShiftType      domain.ShiftType `json:"shiftType"`
	Message        string           `json:"message"`
}

// Validate checks a roster against every hard constraint and the OFF pairing
// convention, returning all violations found. Generation runs this as a final
// self-check; the editor surface exposes it so managers can audit a manually
// built roster before committing.
func Validate(r Roster, profiles []domain.StaffProfile, overlay *Overlay) []Violation {
	violations := []Violation{}

	byID := make(map[string]*domain.StaffProfile, len(profiles))
	for i := range profiles {
		byID[profiles[i].ID] = &profiles[i]
	}

	type nightKey struct {
		staff string
	}
	nightDates := make(map[nightKey][]calendar.Date)
	workedDays := make(map[string]map[calendar.Date]int)

	add := func(code ViolationCode, a domain.ShiftAssignment, format string, args ...any) {
		violations = append(violations, Violation{
			Code:           code,
			StaffProfileID: a.StaffProfileID,
			Date:           a.Date,
			ShiftType:      a.ShiftType,
			Message:        fmt.Sprintf(format, args...),
		})
	}

	for _, a := range r.Assignments {
		if !a.ShiftType.IsWork() {
			continue
		}

		if workedDays[a.StaffProfileID] == nil {
			workedDays[a.StaffProfileID] = make(map[calendar.Date]int)
		}
		workedDays[a.StaffProfileID][a.Date]++
		if workedDays[a.StaffProfileID][a.Date] == 2 {
			add(ViolationDoubleBooking, a, "two working shifts on the same day")
		}

		if overlay.Blocked(a.StaffProfileID, a.Date) {
			add(ViolationLeaveConflict, a, "assigned during approved leave")
		}

		profile, ok := byID[a.StaffProfileID]
		if !ok {
			add(ViolationUnknownProfile, a, "assignment references an unknown staff profile")
			continue
		}

		if !profile.Capabilities.Can(a.ShiftType) {
			add(ViolationCapabilityMismatch, a, "%s is not enabled for this profile", a.ShiftType)
		}
		if profile.HasSabbathRestriction && domain.ViolatesSabbath(a.Date, a.ShiftType) {
			add(ViolationSabbathConflict, a, "shift overlaps the Sabbath window")
		}

		if a.ShiftType.IsNight() {
			nightDates[nightKey{a.StaffProfileID}] = append(nightDates[nightKey{a.StaffProfileID}], a.Date)

			next := a.Date.Next()
			if next.InMonth(r.Month, r.Year) && r.offIndex(a.StaffProfileID, next) == -1 {
				add(ViolationMissingOffPairing, a, "night shift has no OFF marker on %s", next)
			}
		}
	}

	for key, dates := range nightDates {
		profile, ok := byID[key.staff]
		if !ok {
			continue
		}

		if len(dates) > profile.MaxNightShiftsPerMonth {
			violations = append(violations, Violation{
				Code:           ViolationNightCapExceeded,
				StaffProfileID: key.staff,
				Message:        fmt.Sprintf("%d night shifts exceed the cap of %d", len(dates), profile.MaxNightShiftsPerMonth),
			})
		}

		for i := 0; i < len(dates); i++ {
			for j := i + 1; j < len(dates); j++ {
				gap := calendar.DaysBetween(dates[i], dates[j])
				if gap < 0 {
					gap = -gap
				}
				if gap < profile.MinDaysBetweenNightShifts {
					violations = append(violations, Violation{
						Code:           ViolationNightGapTooShort,
						StaffProfileID: key.staff,
						Date:           dates[j],
						Message:        fmt.Sprintf("only %d days since the night shift on %s, minimum is %d", gap, dates[i], profile.MinDaysBetweenNightShifts),
					})
				}
			}
		}
	}

	return violations
}
