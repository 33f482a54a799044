package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleHRAdmin    Role = "HR_ADMIN"
	RoleViewer     Role = "VIEWER"
)

// CanWrite reports whether the role may mutate officer, attendance or
// leave records. Viewers are read-only.
func (r Role) CanWrite() bool {
	return r == RoleSuperAdmin || r == RoleHRAdmin
}

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleHRAdmin, RoleViewer:
		return true
	}
	return false
}

// Identity is the authenticated caller, threaded explicitly into every
// service operation. The zero value means "not authenticated".
type Identity struct {
	UserID string
	Role   Role
	// SourceAddress is carried for the audit trail only.
	SourceAddress string
}

func (i Identity) Authenticated() bool {
	return i.UserID != ""
}

// Authorize gates a service operation. Every operation requires an
// authenticated caller; write operations additionally require a writing
// role.
func (i Identity) Authorize(write bool) error {
	if !i.Authenticated() {
		return ErrUnauthenticated
	}
	if write && !i.Role.CanWrite() {
		return ErrForbidden
	}
	return nil
}

type User struct {
	ID             string
	Email          string
	Name           string
	Role           Role
	PasswordHash   string
	IsActive       bool
	FailedAttempts int
	LockedUntil    *time.Time
	LastLogin      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
