package report

import (
	"context"
	"time"
)

// ReportRepository runs the read-only aggregation queries behind the CSV
// exporter. All methods materialize the whole result set.
type ReportRepository interface {
	// GetAttendanceRows returns entries clocked in within [start, end],
	// ordered by clock-in time.
	GetAttendanceRows(ctx context.Context, start, end time.Time) ([]AttendanceRow, error)

	// GetTimesheetRows returns closed entries clocked in within [start, end].
	GetTimesheetRows(ctx context.Context, start, end time.Time) ([]TimesheetRow, error)

	// GetLeaveRows returns leaves whose interval intersects [start, end],
	// ordered by start date.
	GetLeaveRows(ctx context.Context, start, end time.Time) ([]LeaveRow, error)

	// GetOvertimeRows returns overtime-flagged entries within [start, end].
	GetOvertimeRows(ctx context.Context, start, end time.Time) ([]OvertimeRow, error)

	// GetAOLRows returns AOL leaves starting within [start, end].
	GetAOLRows(ctx context.Context, start, end time.Time) ([]AOLRow, error)

	// GetRosterRows returns ACTIVE officers ordered by station then surname.
	GetRosterRows(ctx context.Context) ([]RosterRow, error)
}
