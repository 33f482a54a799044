package leave

import (
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/officer"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE DTOs
// ========================================

type ApplyRequest struct {
	OfficerID       string  `json:"officer_id"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Reason          *string `json:"reason,omitempty"`
	ExcludeWeekends *bool   `json:"exclude_weekends,omitempty"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OfficerID) {
		errs = append(errs, validator.ValidationError{Field: "officer_id", Message: "officer_id is required"})
	}
	if !Type(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type must be one of ANL, SICK, AOL, FR, TRN, COMP, MAT, SUS"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}

	// LeaveDays would quietly count zero for an inverted range, so the
	// rejection has to happen here.
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be on or after start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExcludeWeekendsOrDefault applies the original default of skipping
// weekends when the caller does not say otherwise.
func (r *ApplyRequest) ExcludeWeekendsOrDefault() bool {
	if r.ExcludeWeekends == nil {
		return true
	}
	return *r.ExcludeWeekends
}

type DecideAction string

const (
	ActionApprove DecideAction = "approve"
	ActionReject  DecideAction = "reject"
)

type DecideRequest struct {
	Action          string  `json:"action"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	switch DecideAction(r.Action) {
	case ActionApprove:
	case ActionReject:
		if r.RejectionReason == nil || validator.IsEmpty(*r.RejectionReason) {
			errs = append(errs, validator.ValidationError{Field: "rejection_reason", Message: "rejection_reason is required when rejecting"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "action", Message: "action must be approve or reject"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveFilter struct {
	OfficerID *string
	Status    *string

	// RangeStart/RangeEnd select leaves whose interval intersects the
	// query range: start_date <= RangeEnd AND end_date >= RangeStart.
	RangeStart *time.Time
	RangeEnd   *time.Time

	// Limit caps the result set when positive.
	Limit int
}

type LeaveResponse struct {
	ID              string                   `json:"id"`
	OfficerID       string                   `json:"officer_id"`
	LeaveType       string                   `json:"leave_type"`
	StartDate       string                   `json:"start_date"`
	EndDate         string                   `json:"end_date"`
	DaysRequested   int                      `json:"days_requested"`
	DaysApproved    *int                     `json:"days_approved,omitempty"`
	Status          string                   `json:"status"`
	Reason          *string                  `json:"reason,omitempty"`
	RejectionReason *string                  `json:"rejection_reason,omitempty"`
	ApprovedBy      *string                  `json:"approved_by,omitempty"`
	ApprovedAt      *string                  `json:"approved_at,omitempty"`
	Officer         *officer.OfficerResponse `json:"officer,omitempty"`
	CreatedAt       string                   `json:"created_at"`
}

func ToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID,
		OfficerID:       l.OfficerID,
		LeaveType:       string(l.LeaveType),
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		DaysRequested:   l.DaysRequested,
		DaysApproved:    l.DaysApproved,
		Status:          string(l.Status),
		Reason:          l.Reason,
		RejectionReason: l.RejectionReason,
		ApprovedBy:      l.ApprovedBy,
		CreatedAt:       l.CreatedAt.Format(time.RFC3339),
	}
	if l.ApprovedAt != nil {
		at := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &at
	}
	if l.Officer != nil {
		o := officer.ToResponse(*l.Officer)
		resp.Officer = &o
	}
	return resp
}
