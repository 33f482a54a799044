package attendance

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access for attendance records.
type TimeEntryRepository interface {
	// CreateIfNoOpenEntry inserts a new entry unless the officer already
	// has an open entry (clock_out IS NULL) with clock_in on or after
	// dayStart. The existence check and the insert are a single
	// conditional statement so concurrent clock-ins cannot both succeed.
	// Returns ErrAlreadyClockedIn when the insert is suppressed.
	CreateIfNoOpenEntry(ctx context.Context, entry TimeEntry, dayStart time.Time) (TimeEntry, error)

	// GetOpenEntry returns the officer's open entry with clock_in on or
	// after dayStart, or ErrNoOpenEntry.
	GetOpenEntry(ctx context.Context, officerID string, dayStart time.Time) (TimeEntry, error)

	// CloseEntry records the clock-out mutation: clock_out, hours worked,
	// overtime flag, break minutes and the (already appended) notes.
	CloseEntry(ctx context.Context, entry TimeEntry) error

	// ListOnDuty returns open entries since dayStart joined with officers.
	ListOnDuty(ctx context.Context, dayStart time.Time) ([]TimeEntry, error)

	// CloseStaleOpenEntries closes every entry still open with clock_in
	// before openedBefore, stamping a standard shift, and returns the
	// number of entries closed. Entries that old are no longer reachable
	// through clock-out but still block the officer's next clock-in.
	CloseStaleOpenEntries(ctx context.Context, openedBefore time.Time) (int64, error)

	// List returns entries matching the filter joined with officers.
	List(ctx context.Context, filter TimeEntryFilter) ([]TimeEntry, int64, error)
}
