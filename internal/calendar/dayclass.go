package calendar

import "time"

type DayClass string

const (
	ClassWeekday        DayClass = "WEEKDAY"
	ClassWeekendHoliday DayClass = "WEEKEND_HOLIDAY"
)

// HolidaySet is the optional list of branch holidays passed to generation.
type HolidaySet map[Date]bool

func NewHolidaySet(dates []Date) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return set
}

// Classify treats Saturday, Sunday and declared holidays as WEEKEND_HOLIDAY,
// everything else as WEEKDAY.
func Classify(d Date, holidays HolidaySet) DayClass {
	if holidays[d] {
		return ClassWeekendHoliday
	}
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return ClassWeekendHoliday
	default:
		return ClassWeekday
	}
}
