package worktime

import (
	"time"

	"github.com/shopspring/decimal"
)

// OvertimeThresholdHours is the shift length above which a closed time
// entry is flagged as overtime.
const OvertimeThresholdHours = 8.0

var (
	msPerHour  = decimal.NewFromInt(3_600_000)
	minPerHour = decimal.NewFromInt(60)
)

// HoursWorked returns the elapsed hours between clockIn and clockOut minus
// the break allowance, rounded half-up to two decimal places.
//
// A clockOut earlier than clockIn yields a negative value; callers that
// care must reject skewed input themselves.
func HoursWorked(clockIn, clockOut time.Time, breakMinutes int) float64 {
	elapsed := decimal.NewFromInt(clockOut.Sub(clockIn).Milliseconds()).Div(msPerHour)
	breaks := decimal.NewFromInt(int64(breakMinutes)).Div(minPerHour)
	hours, _ := elapsed.Sub(breaks).Round(2).Float64()
	return hours
}

// IsOvertime reports whether a worked-hours figure exceeds the overtime
// threshold. The comparison is strict: exactly 8.0 hours is not overtime.
func IsOvertime(hours float64) bool {
	return hours > OvertimeThresholdHours
}

// LeaveDays counts the calendar days in the closed interval [start, end],
// skipping Saturdays and Sundays when excludeWeekends is set. An end date
// before the start date counts zero days; rejecting such ranges is the
// caller's job.
func LeaveDays(start, end time.Time, excludeWeekends bool) int {
	start = truncateToDay(start)
	end = truncateToDay(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if excludeWeekends && (d.Weekday() == time.Saturday || d.Weekday() == time.Sunday) {
			continue
		}
		count++
	}
	return count
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfDay returns midnight of t's day in t's location. Attendance
// queries use it to scope "today".
func StartOfDay(t time.Time) time.Time {
	return truncateToDay(t)
}
