package response

import (
	"errors"
	"net/http"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/attendance"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/auth"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/leave"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/officer"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Identity errors
	case errors.Is(err, user.ErrUnauthenticated):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, user.ErrForbidden):
		Forbidden(w, "Role does not permit this operation")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrAccountLocked):
		TooManyRequests(w, "Account locked, try again later")
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Officer domain errors
	case errors.Is(err, officer.ErrOfficerNotFound):
		NotFound(w, "Officer not found")
	case errors.Is(err, officer.ErrDuplicateNumber):
		Conflict(w, "Officer with this AO or PC number already exists")
	case errors.Is(err, officer.ErrOfficerInactive):
		BadRequest(w, "Officer is not active", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Officer is already clocked in")
	case errors.Is(err, attendance.ErrNoOpenEntry):
		NotFound(w, "No active clock-in found for this officer")
	case errors.Is(err, attendance.ErrEntryNotFound):
		NotFound(w, "Time entry not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave has already been processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
