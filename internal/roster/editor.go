package roster

import (
	"github.com/google/uuid"

	"github.com/Razboth/Servicedesk-sub005/internal/calendar"
	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

// Editor applies single interactive edits to a roster value. Every operation
// is a pure transformation: it either returns a new roster or a *Rejection
// and never mutates its input. The leave overlay blocks placement exactly as
// it does during generation.
type Editor struct {
	overlay *Overlay
}

func NewEditor(overlay *Overlay) *Editor {
	return &Editor{overlay: overlay}
}

type EditOp string

const (
	OpAssign  EditOp = "assign"
	OpReplace EditOp = "replace"
	OpMove    EditOp = "move"
	OpSwap    EditOp = "swap"
	OpDelete  EditOp = "delete"
	OpClear   EditOp = "clear"
)

// Edit is the wire descriptor for one interactive edit.
type Edit struct {
	Op                 EditOp           `json:"op" validate:"required,oneof=assign replace move swap delete clear"`
	StaffProfileID     string           `json:"staffProfileId,omitempty"`
	AssignmentID       string           `json:"assignmentId,omitempty"`
	TargetAssignmentID string           `json:"targetAssignmentId,omitempty"`
	Date               calendar.Date    `json:"date,omitempty"`
	ShiftType          domain.ShiftType `json:"shiftType,omitempty"`
}

func (e *Editor) Apply(r Roster, edit Edit) (Roster, error) {
	switch edit.Op {
	case OpAssign:
		return e.Assign(r, edit.StaffProfileID, edit.Date, edit.ShiftType)
	case OpReplace:
		return e.Replace(r, edit.TargetAssignmentID, edit.StaffProfileID)
	case OpMove:
		return e.Move(r, edit.AssignmentID, edit.Date, edit.ShiftType)
	case OpSwap:
		return e.Swap(r, edit.AssignmentID, edit.TargetAssignmentID)
	case OpDelete:
		return e.Delete(r, edit.AssignmentID)
	case OpClear:
		return e.Clear(r), nil
	default:
		return r, reject(CodeValidation, "unknown edit operation %q", edit.Op)
	}
}

// Assign creates one assignment in an empty (date, type) slot, dragged in
// from the staff pool.
func (e *Editor) Assign(r Roster, staffProfileID string, d calendar.Date, t domain.ShiftType) (Roster, error) {
	if staffProfileID == "" {
		return r, reject(CodeValidation, "staff profile id is required")
	}
	if !t.IsWork() {
		return r, reject(CodeValidation, "shift type %q is not assignable", t)
	}
	if r.slotIndex(d, t) != -1 {
		return r, reject(CodeConflict, "slot %s %s is already occupied", d, t)
	}
	if err := e.checkPlacement(r, staffProfileID, d, -1); err != nil {
		return r, err
	}

	out := r.clone()
	out.Assignments = append(out.Assignments, domain.ShiftAssignment{
		ID:             uuid.NewString(),
		ScheduleID:     r.ScheduleID,
		StaffProfileID: staffProfileID,
		Date:           d,
		ShiftType:      t,
	})
	return out, nil
}

// Replace overwrites an occupied slot's staff member with another; the
// displaced assignment is discarded, not moved elsewhere.
func (e *Editor) Replace(r Roster, targetAssignmentID, staffProfileID string) (Roster, error) {
	if staffProfileID == "" {
		return r, reject(CodeValidation, "staff profile id is required")
	}
	idx := r.indexOf(targetAssignmentID)
	if idx == -1 {
		return r, reject(CodeValidation, "assignment %s not found", targetAssignmentID)
	}
	target := r.Assignments[idx]
	if err := e.checkPlacement(r, staffProfileID, target.Date, idx); err != nil {
		return r, err
	}

	out := r.clone()
	out.Assignments[idx].StaffProfileID = staffProfileID
	return out, nil
}

// Move relocates an existing assignment to an empty slot of the same shift
// type; crossing shift types is rejected so the user re-assigns from the
// staff pool instead. A night assignment's linked OFF marker moves with it.
func (e *Editor) Move(r Roster, assignmentID string, d calendar.Date, t domain.ShiftType) (Roster, error) {
	idx := r.indexOf(assignmentID)
	if idx == -1 {
		return r, reject(CodeValidation, "assignment %s not found", assignmentID)
	}
	src := r.Assignments[idx]
	if t != src.ShiftType {
		return r, reject(CodeTypeMismatch, "cannot move a %s assignment onto a %s slot", src.ShiftType, t)
	}
	if r.slotIndex(d, t) != -1 {
		return r, reject(CodeConflict, "slot %s %s is already occupied", d, t)
	}
	if err := e.checkPlacement(r, src.StaffProfileID, d, idx); err != nil {
		return r, err
	}

	out := r.clone()
	out.Assignments[idx].Date = d

	if src.ShiftType.IsNight() {
		if offIdx := r.offIndex(src.StaffProfileID, src.Date.Next()); offIdx != -1 {
			next := d.Next()
			if next.InMonth(r.Month, r.Year) {
				out.Assignments[offIdx].Date = next
			} else {
				// same clamp as generation: no OFF marker past month end
				out.Assignments = append(out.Assignments[:offIdx], out.Assignments[offIdx+1:]...)
			}
		}
	}
	return out, nil
}

// Swap exchanges the staff members of two assignments of the same shift type.
// OFF markers are located before the exchange, keyed by the original owners
// and the calendar-safe next day, then re-owned so rest-day ownership tracks
// the swapped night shifts.
func (e *Editor) Swap(r Roster, sourceAssignmentID, targetAssignmentID string) (Roster, error) {
	srcIdx := r.indexOf(sourceAssignmentID)
	if srcIdx == -1 {
		return r, reject(CodeValidation, "assignment %s not found", sourceAssignmentID)
	}
	tgtIdx := r.indexOf(targetAssignmentID)
	if tgtIdx == -1 {
		return r, reject(CodeValidation, "assignment %s not found", targetAssignmentID)
	}

	src := r.Assignments[srcIdx]
	tgt := r.Assignments[tgtIdx]

	if src.StaffProfileID == tgt.StaffProfileID {
		return r, reject(CodeNoOp, "cannot swap a staff member with themselves")
	}
	if src.ShiftType != tgt.ShiftType {
		return r, reject(CodeTypeMismatch, "cannot swap assignments of different shift types")
	}
	if src.Date != tgt.Date {
		// each side lands on the other's day
		if err := e.checkPlacement(r, src.StaffProfileID, tgt.Date, tgtIdx, srcIdx); err != nil {
			return r, err
		}
		if err := e.checkPlacement(r, tgt.StaffProfileID, src.Date, srcIdx, tgtIdx); err != nil {
			return r, err
		}
	}

	// locate OFF markers before exchanging owners
	srcOffIdx := r.offIndex(src.StaffProfileID, src.Date.Next())
	tgtOffIdx := r.offIndex(tgt.StaffProfileID, tgt.Date.Next())

	out := r.clone()
	out.Assignments[srcIdx].StaffProfileID = tgt.StaffProfileID
	out.Assignments[tgtIdx].StaffProfileID = src.StaffProfileID

	if srcOffIdx != -1 {
		out.Assignments[srcOffIdx].StaffProfileID = tgt.StaffProfileID
	}
	if tgtOffIdx != -1 {
		out.Assignments[tgtOffIdx].StaffProfileID = src.StaffProfileID
	}
	return out, nil
}

// Delete removes a single assignment. It deliberately does not cascade to a
// paired OFF marker; removing the orphaned marker stays a follow-up action.
func (e *Editor) Delete(r Roster, assignmentID string) (Roster, error) {
	idx := r.indexOf(assignmentID)
	if idx == -1 {
		return r, reject(CodeValidation, "assignment %s not found", assignmentID)
	}

	out := r.clone()
	out.Assignments = append(out.Assignments[:idx], out.Assignments[idx+1:]...)
	return out, nil
}

// Clear empties the whole in-memory roster. Persisted state is untouched
// until the next commit; LEAVE rows are re-derived on the next load anyway.
func (e *Editor) Clear(r Roster) Roster {
	out := r
	out.Assignments = []domain.ShiftAssignment{}
	return out
}

// checkPlacement enforces the two placement rules shared by every edit that
// puts a staff member on a day: the day must not be blocked by approved
// leave, and the member must not already hold a different working shift that
// day. Indices in ignore are existing assignments excluded from the
// double-booking check (the slot being overwritten or swapped).
func (e *Editor) checkPlacement(r Roster, staffProfileID string, d calendar.Date, ignore ...int) error {
	if e.overlay.Blocked(staffProfileID, d) {
		return reject(CodeConflict, "staff member is on approved leave on %s", d)
	}

	idx := r.workingOn(staffProfileID, d)
	if idx == -1 {
		return nil
	}
	for _, ig := range ignore {
		if idx == ig {
			return nil
		}
	}
	return reject(CodeConflict, "staff member already holds a working shift on %s", d)
}
