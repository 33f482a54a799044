package officer

import "errors"

var (
	ErrOfficerNotFound = errors.New("officer not found")
	ErrDuplicateNumber = errors.New("officer with this AO or PC number already exists")
	ErrOfficerInactive = errors.New("officer is not active")
)
