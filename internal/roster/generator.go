package roster

import (
	"sort"

	"github.com/google/uuid"

	"github.com/Razboth/Servicedesk-sub005/internal/calendar"
	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

const (
	minSupportedYear = 2020
	maxSupportedYear = 2100
)

// Gap is a required (day, shift type) slot the generator could not fill.
// Gaps are reported alongside the result, never fatal.
type Gap struct {
	Date      calendar.Date    `json:"date"`
	ShiftType domain.ShiftType `json:"shiftType"`
}

type Result struct {
	Roster Roster `json:"roster"`
	Gaps   []Gap  `json:"gaps"`
}

// Generator produces a complete month roster for a branch from the eligible
// profiles and the leave overlay, using greedy day-by-day, slot-by-slot
// constraint satisfaction.
type Generator struct {
	profiles []domain.StaffProfile
	overlay  *Overlay
	holidays calendar.HolidaySet
}

func NewGenerator(profiles []domain.StaffProfile, overlay *Overlay, holidays []calendar.Date) *Generator {
	return &Generator{
		profiles: profiles,
		overlay:  overlay,
		holidays: calendar.NewHolidaySet(holidays),
	}
}

// staffState tracks per-staff counters accumulated while walking the month.
type staffState struct {
	total     int
	nights    int
	lastNight *calendar.Date
}

func (g *Generator) Generate(branchID string, month, year int) (*Result, error) {
	if branchID == "" {
		return nil, reject(CodeValidation, "branch id is required")
	}
	if month < 1 || month > 12 {
		return nil, reject(CodeValidation, "month %d is out of range", month)
	}
	if year < minSupportedYear || year > maxSupportedYear {
		return nil, reject(CodeValidation, "year %d is out of the supported range", year)
	}

	result := &Result{
		Roster: Roster{
			BranchID: branchID,
			Month:    month,
			Year:     year,
		},
		Gaps: []Gap{},
	}

	states := make(map[string]*staffState, len(g.profiles))
	for _, p := range g.profiles {
		states[p.ID] = &staffState{}
	}

	last := calendar.LastOfMonth(month, year)
	for d := calendar.FirstOfMonth(month, year); !d.After(last); d = d.Next() {
		class := calendar.Classify(d, g.holidays)

		for _, shiftType := range domain.SchedulableTypes(class) {
			chosen := g.pickCandidate(result.Roster, states, d, shiftType)
			if chosen == nil {
				result.Gaps = append(result.Gaps, Gap{Date: d, ShiftType: shiftType})
				continue
			}

			result.Roster.Assignments = append(result.Roster.Assignments, domain.ShiftAssignment{
				ID:             uuid.NewString(),
				StaffProfileID: chosen.ID,
				Date:           d,
				ShiftType:      shiftType,
			})

			state := states[chosen.ID]
			state.total++
			if shiftType.IsNight() {
				state.nights++
				day := d
				state.lastNight = &day

				// pair the night shift with a rest marker the next day,
				// clamped at month end: no OFF row past the last day
				next := d.Next()
				if next.InMonth(month, year) {
					result.Roster.Assignments = append(result.Roster.Assignments, domain.ShiftAssignment{
						ID:             uuid.NewString(),
						StaffProfileID: chosen.ID,
						Date:           next,
						ShiftType:      domain.ShiftOff,
					})
				}
			}
		}
	}

	return result, nil
}

// pickCandidate applies the hard constraints and returns the best-ranked
// eligible profile for the slot, or nil when the slot cannot be filled.
func (g *Generator) pickCandidate(r Roster, states map[string]*staffState, d calendar.Date, t domain.ShiftType) *domain.StaffProfile {
	var candidates []*domain.StaffProfile

	for i := range g.profiles {
		p := &g.profiles[i]
		if !p.IsActive || !p.Capabilities.Can(t) {
			continue
		}
		if g.overlay.Blocked(p.ID, d) {
			continue
		}
		if r.workingOn(p.ID, d) != -1 {
			continue
		}
		if p.HasSabbathRestriction && domain.ViolatesSabbath(d, t) {
			continue
		}

		state := states[p.ID]
		if t.IsNight() {
			if state.nights >= p.MaxNightShiftsPerMonth {
				continue
			}
			if state.lastNight != nil && calendar.DaysBetween(*state.lastNight, d) < p.MinDaysBetweenNightShifts {
				continue
			}
		}

		candidates = append(candidates, p)
	}

	if len(candidates) == 0 {
		return nil
	}

	// rank by load so far, then soft preference, then stable id order
	sort.Slice(candidates, func(i, j int) bool {
		si, sj := states[candidates[i].ID], states[candidates[j].ID]
		if si.total != sj.total {
			return si.total < sj.total
		}
		mi := candidates[i].PreferredShiftType.Matches(t)
		mj := candidates[j].PreferredShiftType.Matches(t)
		if mi != mj {
			return mi
		}
		return candidates[i].ID < candidates[j].ID
	})

	return candidates[0]
}
