package roster

import (
	"fmt"

	"github.com/Razboth/Servicedesk-sub005/internal/calendar"
	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

// Overlay is the per-day unavailability projection of approved leaves for one
// month. It is a pure read model; any (staff, day) present here is blocked for
// both the generator and the manual editor.
type Overlay struct {
	days map[string]map[calendar.Date]bool // staffProfileID -> blocked days
}

// BuildOverlay intersects approved leave intervals with the target month,
// clipped to month boundaries. Non-approved requests are ignored.
func BuildOverlay(leaves []domain.LeaveRequest, month, year int) *Overlay {
	o := &Overlay{days: make(map[string]map[calendar.Date]bool)}

	first := calendar.FirstOfMonth(month, year)
	last := calendar.LastOfMonth(month, year)

	for _, leave := range leaves {
		if leave.Status != domain.LeaveApproved {
			continue
		}
		if leave.EndDate.Before(first) || leave.StartDate.After(last) {
			continue
		}

		start := leave.StartDate.Clamp(first, last)
		end := leave.EndDate.Clamp(first, last)

		for d := start; !d.After(end); d = d.Next() {
			if o.days[leave.StaffProfileID] == nil {
				o.days[leave.StaffProfileID] = make(map[calendar.Date]bool)
			}
			o.days[leave.StaffProfileID][d] = true
		}
	}

	return o
}

func (o *Overlay) Blocked(staffProfileID string, d calendar.Date) bool {
	if o == nil {
		return false
	}
	return o.days[staffProfileID][d]
}

// LeaveAssignments renders the overlay as display-only LEAVE rows with
// synthetic ids. They are re-derived on every load and never persisted.
func LeaveAssignments(leaves []domain.LeaveRequest, month, year int) []domain.ShiftAssignment {
	first := calendar.FirstOfMonth(month, year)
	last := calendar.LastOfMonth(month, year)

	var rows []domain.ShiftAssignment
	for _, leave := range leaves {
		if leave.Status != domain.LeaveApproved {
			continue
		}
		if leave.EndDate.Before(first) || leave.StartDate.After(last) {
			continue
		}

		start := leave.StartDate.Clamp(first, last)
		end := leave.EndDate.Clamp(first, last)

		for d := start; !d.After(end); d = d.Next() {
			rows = append(rows, domain.ShiftAssignment{
				ID:             fmt.Sprintf("leave-%s-%s", leave.ID, d),
				StaffProfileID: leave.StaffProfileID,
				Date:           d,
				ShiftType:      domain.ShiftLeave,
			})
		}
	}
	return rows
}
