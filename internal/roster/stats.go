package roster

import (
	"sort"

	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

// StaffStatistics summarizes one staff member's load within a roster, fed to
// the manager statistics screen.
type StaffStatistics struct {
	StaffProfileID string                   `json:"staffProfileId"`
	FullName       string                   `json:"fullName"`
	Total          int                      `json:"total"`
	ByType         map[domain.ShiftType]int `json:"byType"`
	NightShifts    int                      `json:"nightShifts"`
	OffDays        int                      `json:"offDays"`
}

func Statistics(r Roster, profiles []domain.StaffProfile) []StaffStatistics {
	byID := make(map[string]*StaffStatistics, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = &StaffStatistics{
			StaffProfileID: p.ID,
			FullName:       p.FullName,
			ByType:         make(map[domain.ShiftType]int),
		}
	}

	for _, a := range r.Assignments {
		stats, ok := byID[a.StaffProfileID]
		if !ok {
			// historical assignment of a profile outside the eligible list
			stats = &StaffStatistics{
				StaffProfileID: a.StaffProfileID,
				ByType:         make(map[domain.ShiftType]int),
			}
			byID[a.StaffProfileID] = stats
		}

		switch {
		case a.ShiftType == domain.ShiftOff:
			stats.OffDays++
		case a.ShiftType.IsWork():
			stats.Total++
			stats.ByType[a.ShiftType]++
			if a.ShiftType.IsNight() {
				stats.NightShifts++
			}
		}
	}

	out := make([]StaffStatistics, 0, len(byID))
	for _, s := range byID {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StaffProfileID < out[j].StaffProfileID
	})
	return out
}
