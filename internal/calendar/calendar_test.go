package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRollsOverMonthAndYear(t *testing.T) {
	tests := []struct {
		name string
		in   Date
		want Date
	}{
		{"mid month", NewDate(2025, 6, 14), NewDate(2025, 6, 15)},
		{"month end", NewDate(2025, 1, 31), NewDate(2025, 2, 1)},
		{"leap february", NewDate(2024, 2, 28), NewDate(2024, 2, 29)},
		{"non-leap february", NewDate(2025, 2, 28), NewDate(2025, 3, 1)},
		{"year end", NewDate(2025, 12, 31), NewDate(2026, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Next())
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(1, 2025))
	assert.Equal(t, 28, DaysInMonth(2, 2025))
	assert.Equal(t, 29, DaysInMonth(2, 2024))
	assert.Equal(t, 30, DaysInMonth(9, 2025))
}

func TestParseAndString(t *testing.T) {
	d, err := Parse("2025-09-07")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, 9, 7), d)
	assert.Equal(t, "2025-09-07", d.String())

	_, err = Parse("07/09/2025")
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, 3, 1)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-01"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.Equal(t, d, parsed)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, DaysBetween(NewDate(2025, 1, 31), NewDate(2025, 2, 1)))
	assert.Equal(t, 3, DaysBetween(NewDate(2025, 6, 2), NewDate(2025, 6, 5)))
	assert.Equal(t, -3, DaysBetween(NewDate(2025, 6, 5), NewDate(2025, 6, 2)))
}

func TestClassify(t *testing.T) {
	// 2025-09-01 is a Monday
	monday := NewDate(2025, 9, 1)
	saturday := NewDate(2025, 9, 6)
	sunday := NewDate(2025, 9, 7)

	require.Equal(t, time.Monday, monday.Weekday())

	assert.Equal(t, ClassWeekday, Classify(monday, nil))
	assert.Equal(t, ClassWeekendHoliday, Classify(saturday, nil))
	assert.Equal(t, ClassWeekendHoliday, Classify(sunday, nil))

	holidays := NewHolidaySet([]Date{monday})
	assert.Equal(t, ClassWeekendHoliday, Classify(monday, holidays))
}

func TestClamp(t *testing.T) {
	lo := NewDate(2025, 6, 1)
	hi := NewDate(2025, 6, 30)

	assert.Equal(t, lo, NewDate(2025, 5, 20).Clamp(lo, hi))
	assert.Equal(t, hi, NewDate(2025, 7, 2).Clamp(lo, hi))
	assert.Equal(t, NewDate(2025, 6, 15), NewDate(2025, 6, 15).Clamp(lo, hi))
}
