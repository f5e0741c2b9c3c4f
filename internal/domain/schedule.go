package domain

import (
	"time"

	"github.com/Razboth/Servicedesk-sub005/internal/calendar"
)

type ShiftAssignment struct {
	ID             string        `json:"id"`
	ScheduleID     string        `json:"scheduleId"`
	StaffProfileID string        `json:"staffProfileId"`
	Date           calendar.Date `json:"date"`
	ShiftType      ShiftType     `json:"shiftType"`
}

type Schedule struct {
	ID          string            `json:"id"`
	BranchID    string            `json:"branchId"`
	Month       int               `json:"month"`
	Year        int               `json:"year"`
	Assignments []ShiftAssignment `json:"assignments,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	Version     int32             `json:"-"`
}
