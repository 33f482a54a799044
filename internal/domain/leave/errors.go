package leave

import "errors"

var (
	ErrLeaveNotFound       = errors.New("leave application not found")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrAlreadyProcessed    = errors.New("leave has already been processed")
)
