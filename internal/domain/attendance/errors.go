package attendance

import "errors"

var (
	// ErrAlreadyClockedIn means an open entry already exists for the
	// officer today.
	ErrAlreadyClockedIn = errors.New("officer is already clocked in")

	// ErrNoOpenEntry means there is nothing to clock out of today.
	ErrNoOpenEntry = errors.New("no active clock-in found for this officer")

	ErrEntryNotFound = errors.New("time entry not found")
)
