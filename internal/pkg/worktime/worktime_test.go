package worktime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHoursWorked(t *testing.T) {
	clockIn := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		clockOut     time.Time
		breakMinutes int
		want         float64
	}{
		{"standard shift with lunch break", clockIn.Add(8*time.Hour + 30*time.Minute), 30, 8.0},
		{"long shift no break", clockIn.Add(10 * time.Hour), 0, 10.0},
		{"short shift", clockIn.Add(4 * time.Hour), 0, 4.0},
		{"third of an hour rounds to 7.33", clockIn.Add(7*time.Hour + 20*time.Minute), 0, 7.33},
		{"break longer than shift goes negative", clockIn.Add(30 * time.Minute), 90, -1.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, HoursWorked(clockIn, c.clockOut, c.breakMinutes), 0.001)
		})
	}
}

func TestHoursWorkedClockSkewUnguarded(t *testing.T) {
	clockIn := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
	// clockOut before clockIn is not guarded; the arithmetic just goes negative
	got := HoursWorked(clockIn, clockIn.Add(-2*time.Hour), 0)
	assert.Equal(t, -2.0, got)
}

func TestIsOvertime(t *testing.T) {
	assert.False(t, IsOvertime(7.99))
	assert.False(t, IsOvertime(8.0), "exactly eight hours is not overtime")
	assert.True(t, IsOvertime(8.01))
	assert.True(t, IsOvertime(10.0))
}

func TestLeaveDaysCalendar(t *testing.T) {
	// Mon 2024-06-03 .. Fri 2024-06-07
	assert.Equal(t, 5, LeaveDays(date(2024, 6, 3), date(2024, 6, 7), false))
	// single day
	assert.Equal(t, 1, LeaveDays(date(2024, 6, 3), date(2024, 6, 3), false))
	// full fortnight including both weekends
	assert.Equal(t, 14, LeaveDays(date(2024, 6, 3), date(2024, 6, 16), false))
}

func TestLeaveDaysExcludingWeekends(t *testing.T) {
	// Mon..Fri contains no weekend
	assert.Equal(t, 5, LeaveDays(date(2024, 6, 3), date(2024, 6, 7), true))
	// Mon..Sun drops Sat+Sun
	assert.Equal(t, 5, LeaveDays(date(2024, 6, 3), date(2024, 6, 9), true))
	// Sat..Sun is zero working days
	assert.Equal(t, 0, LeaveDays(date(2024, 6, 8), date(2024, 6, 9), true))
	// two full weeks keep ten working days
	assert.Equal(t, 10, LeaveDays(date(2024, 6, 3), date(2024, 6, 16), true))
}

func TestLeaveDaysInvertedRangeIsZero(t *testing.T) {
	// callers must reject end < start; the count itself is simply zero
	assert.Equal(t, 0, LeaveDays(date(2024, 6, 7), date(2024, 6, 3), false))
	assert.Equal(t, 0, LeaveDays(date(2024, 6, 7), date(2024, 6, 3), true))
}

func TestLeaveDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 6, 3, 23, 50, 0, 0, time.UTC)
	end := time.Date(2024, 6, 4, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, 2, LeaveDays(start, end, false))
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2024, 6, 3, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, date(2024, 6, 3), StartOfDay(ts))
}
