package domain

import "time"

type ShiftPreference string

const (
	PreferenceNone  ShiftPreference = ""
	PreferenceDay   ShiftPreference = "DAY"
	PreferenceNight ShiftPreference = "NIGHT"
)

// Matches reports whether the preference aligns with the given shift type.
// It is only ever a tie-breaker, never a hard constraint.
func (p ShiftPreference) Matches(t ShiftType) bool {
	switch p {
	case PreferenceNight:
		return t.IsNight()
	case PreferenceDay:
		return t.IsWork() && !t.IsNight()
	}
	return false
}

type StaffProfile struct {
	ID                        string          `json:"id"`
	UserID                    string          `json:"userId"`
	BranchID                  string          `json:"branchId"`
	FullName                  string          `json:"fullName"`
	Email                     string          `json:"email"`
	Capabilities              CapabilitySet   `json:"-"`
	CapabilityTypes           []ShiftType     `json:"capabilities"`
	HasServerAccess           bool            `json:"hasServerAccess"`
	HasSabbathRestriction     bool            `json:"hasSabbathRestriction"`
	MaxNightShiftsPerMonth    int             `json:"maxNightShiftsPerMonth"`
	MinDaysBetweenNightShifts int             `json:"minDaysBetweenNightShifts"`
	PreferredShiftType        ShiftPreference `json:"preferredShiftType"`
	IsActive                  bool            `json:"isActive"`
	AssignmentCount           int             `json:"assignmentCount"`
	CreatedAt                 time.Time       `json:"createdAt"`
	Version                   int32           `json:"-"`
}

// Normalize applies the server-access rule to the capability mask and keeps
// the expanded JSON view in sync. Always called before persisting a profile.
func (p *StaffProfile) Normalize() {
	p.Capabilities = NormalizeForServerAccess(p.Capabilities, p.HasServerAccess)
	p.CapabilityTypes = p.Capabilities.Types()
	if p.MinDaysBetweenNightShifts < 1 {
		p.MinDaysBetweenNightShifts = 1
	}
	if p.MaxNightShiftsPerMonth < 0 {
		p.MaxNightShiftsPerMonth = 0
	}
}
