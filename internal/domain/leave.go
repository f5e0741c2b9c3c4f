package domain

import "github.com/Razboth/Servicedesk-sub005/internal/calendar"

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

// LeaveRequest is the approval workflow's output as consumed here; the
// workflow itself lives outside this service.
type LeaveRequest struct {
	ID             string        `json:"id"`
	StaffProfileID string        `json:"staffProfileId"`
	StartDate      calendar.Date `json:"startDate"`
	EndDate        calendar.Date `json:"endDate"`
	Status         LeaveStatus   `json:"status"`
}
