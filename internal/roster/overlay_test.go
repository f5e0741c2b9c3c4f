package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Razboth/Servicedesk-sub005/internal/calendar"
	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

func TestBuildOverlayClipsToMonth(t *testing.T) {
	// spans the August/September boundary: only the September days block
	o := BuildOverlay([]domain.LeaveRequest{{
		ID:             "l1",
		StaffProfileID: "p1",
		StartDate:      calendar.NewDate(2025, 8, 28),
		EndDate:        calendar.NewDate(2025, 9, 3),
		Status:         domain.LeaveApproved,
	}}, 9, 2025)

	assert.True(t, o.Blocked("p1", sept(1)))
	assert.True(t, o.Blocked("p1", sept(3)))
	assert.False(t, o.Blocked("p1", sept(4)))
	assert.False(t, o.Blocked("p2", sept(1)))
}

func TestBuildOverlayIgnoresNonApproved(t *testing.T) {
	o := BuildOverlay([]domain.LeaveRequest{
		{ID: "l1", StaffProfileID: "p1", StartDate: sept(1), EndDate: sept(5), Status: domain.LeavePending},
		{ID: "l2", StaffProfileID: "p1", StartDate: sept(10), EndDate: sept(12), Status: domain.LeaveRejected},
		{ID: "l3", StaffProfileID: "p1", StartDate: calendar.NewDate(2025, 10, 1), EndDate: calendar.NewDate(2025, 10, 3), Status: domain.LeaveApproved},
	}, 9, 2025)

	for d := sept(1); !d.After(sept(30)); d = d.Next() {
		assert.False(t, o.Blocked("p1", d))
	}
}

func TestBlockedNilOverlay(t *testing.T) {
	var o *Overlay
	assert.False(t, o.Blocked("p1", sept(1)))
}

func TestLeaveAssignments(t *testing.T) {
	rows := LeaveAssignments([]domain.LeaveRequest{
		{ID: "l1", StaffProfileID: "p1", StartDate: calendar.NewDate(2025, 8, 30), EndDate: sept(2), Status: domain.LeaveApproved},
		{ID: "l2", StaffProfileID: "p2", StartDate: sept(5), EndDate: sept(5), Status: domain.LeavePending},
	}, 9, 2025)

	require.Len(t, rows, 2)
	assert.Equal(t, "leave-l1-2025-09-01", rows[0].ID)
	assert.Equal(t, "p1", rows[0].StaffProfileID)
	assert.Equal(t, domain.ShiftLeave, rows[0].ShiftType)
	assert.Equal(t, "leave-l1-2025-09-02", rows[1].ID)
}
