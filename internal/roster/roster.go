package roster

import (
	"github.com/Razboth/Servicedesk-sub005/internal/calendar"
	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

// Roster is the in-memory assignment set for one branch month. It is treated
// as an immutable value: every edit operation returns a new Roster and leaves
// the input untouched.
type Roster struct {
	ScheduleID  string                   `json:"scheduleId"`
	BranchID    string                   `json:"branchId"`
	Month       int                      `json:"month"`
	Year        int                      `json:"year"`
	Assignments []domain.ShiftAssignment `json:"assignments"`
}

func (r Roster) clone() Roster {
	out := r
	out.Assignments = make([]domain.ShiftAssignment, len(r.Assignments))
	copy(out.Assignments, r.Assignments)
	return out
}

func (r Roster) indexOf(assignmentID string) int {
	for i, a := range r.Assignments {
		if a.ID == assignmentID {
			return i
		}
	}
	return -1
}

// workingOn returns the index of the staff member's working (non-OFF,
// non-LEAVE) assignment on the given day, or -1. The schema allows at most
// one working shift per person per day.
func (r Roster) workingOn(staffProfileID string, d calendar.Date) int {
	for i, a := range r.Assignments {
		if a.StaffProfileID == staffProfileID && a.Date == d && a.ShiftType.IsWork() {
			return i
		}
	}
	return -1
}

// offIndex locates the OFF marker owned by the staff member on the given day,
// used to keep OFF pairing attached across swaps.
func (r Roster) offIndex(staffProfileID string, d calendar.Date) int {
	for i, a := range r.Assignments {
		if a.StaffProfileID == staffProfileID && a.Date == d && a.ShiftType == domain.ShiftOff {
			return i
		}
	}
	return -1
}

// slotIndex returns the index of the assignment occupying a (date, type) slot,
// or -1 when the slot is empty.
func (r Roster) slotIndex(d calendar.Date, t domain.ShiftType) int {
	for i, a := range r.Assignments {
		if a.Date == d && a.ShiftType == t {
			return i
		}
	}
	return -1
}

// CommitSet filters the roster down to what the Batch Committer persists:
// assignments dated inside the roster's month, excluding LEAVE rows (those
// are overlay-derived and never stored). The month filter is defensive
// against drift from leave intervals spanning month boundaries.
func (r Roster) CommitSet() []domain.ShiftAssignment {
	out := make([]domain.ShiftAssignment, 0, len(r.Assignments))
	for _, a := range r.Assignments {
		if a.ShiftType == domain.ShiftLeave {
			continue
		}
		if !a.Date.InMonth(r.Month, r.Year) {
			continue
		}
		out = append(out, a)
	}
	return out
}
