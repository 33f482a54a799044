package officer

import (
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/validator"
)

// ========================================
// OFFICER DTOs
// ========================================

type CreateOfficerRequest struct {
	AONumber               string  `json:"ao_number"`
	PCNumber               string  `json:"pc_number"`
	FirstName              string  `json:"first_name"`
	LastName               string  `json:"last_name"`
	Rank                   string  `json:"rank"`
	Station                string  `json:"station"`
	ContactNumber          *string `json:"contact_number,omitempty"`
	Email                  *string `json:"email,omitempty"`
	DateOfJoining          string  `json:"date_of_joining"`
	Status                 *string `json:"status,omitempty"`
	AnnualLeaveEntitlement *int    `json:"annual_leave_entitlement,omitempty"`
	SickLeaveEntitlement   *int    `json:"sick_leave_entitlement,omitempty"`
}

func (r *CreateOfficerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AONumber) {
		errs = append(errs, validator.ValidationError{Field: "ao_number", Message: "ao_number is required"})
	} else if !validator.IsValidAONumber(r.AONumber) {
		errs = append(errs, validator.ValidationError{Field: "ao_number", Message: "ao_number must match AO followed by six digits"})
	}

	if validator.IsEmpty(r.PCNumber) {
		errs = append(errs, validator.ValidationError{Field: "pc_number", Message: "pc_number is required"})
	} else if !validator.IsValidPCNumber(r.PCNumber) {
		errs = append(errs, validator.ValidationError{Field: "pc_number", Message: "pc_number must match PC followed by six digits"})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if validator.IsEmpty(r.Rank) {
		errs = append(errs, validator.ValidationError{Field: "rank", Message: "rank is required"})
	}
	if validator.IsEmpty(r.Station) {
		errs = append(errs, validator.ValidationError{Field: "station", Message: "station is required"})
	}

	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "date_of_joining must be YYYY-MM-DD"})
	}

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is not valid"})
	}
	if r.ContactNumber != nil && *r.ContactNumber != "" && !validator.IsValidPhoneNumber(*r.ContactNumber) {
		errs = append(errs, validator.ValidationError{Field: "contact_number", Message: "contact_number is not valid"})
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of ACTIVE, INACTIVE, SUSPENDED, RETIRED"})
	}
	if r.AnnualLeaveEntitlement != nil && *r.AnnualLeaveEntitlement < 0 {
		errs = append(errs, validator.ValidationError{Field: "annual_leave_entitlement", Message: "annual_leave_entitlement must not be negative"})
	}
	if r.SickLeaveEntitlement != nil && *r.SickLeaveEntitlement < 0 {
		errs = append(errs, validator.ValidationError{Field: "sick_leave_entitlement", Message: "sick_leave_entitlement must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOfficerRequest struct {
	AONumber               *string `json:"ao_number,omitempty"`
	PCNumber               *string `json:"pc_number,omitempty"`
	FirstName              *string `json:"first_name,omitempty"`
	LastName               *string `json:"last_name,omitempty"`
	Rank                   *string `json:"rank,omitempty"`
	Station                *string `json:"station,omitempty"`
	ContactNumber          *string `json:"contact_number,omitempty"`
	Email                  *string `json:"email,omitempty"`
	DateOfJoining          *string `json:"date_of_joining,omitempty"`
	Status                 *string `json:"status,omitempty"`
	AnnualLeaveEntitlement *int    `json:"annual_leave_entitlement,omitempty"`
	SickLeaveEntitlement   *int    `json:"sick_leave_entitlement,omitempty"`
}

func (r *UpdateOfficerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AONumber != nil && !validator.IsValidAONumber(*r.AONumber) {
		errs = append(errs, validator.ValidationError{Field: "ao_number", Message: "ao_number must match AO followed by six digits"})
	}
	if r.PCNumber != nil && !validator.IsValidPCNumber(*r.PCNumber) {
		errs = append(errs, validator.ValidationError{Field: "pc_number", Message: "pc_number must match PC followed by six digits"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is not valid"})
	}
	if r.ContactNumber != nil && *r.ContactNumber != "" && !validator.IsValidPhoneNumber(*r.ContactNumber) {
		errs = append(errs, validator.ValidationError{Field: "contact_number", Message: "contact_number is not valid"})
	}
	if r.DateOfJoining != nil {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "date_of_joining must be YYYY-MM-DD"})
		}
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of ACTIVE, INACTIVE, SUSPENDED, RETIRED"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OfficerFilter struct {
	// Search matches against AO number, PC number, first and last name.
	Search  *string
	Station *string
	Status  *string

	// Pagination
	Page  int
	Limit int
}

func (f *OfficerFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
}

type OfficerResponse struct {
	ID                     string  `json:"id"`
	AONumber               string  `json:"ao_number"`
	PCNumber               string  `json:"pc_number"`
	FirstName              string  `json:"first_name"`
	LastName               string  `json:"last_name"`
	Rank                   string  `json:"rank"`
	Station                string  `json:"station"`
	ContactNumber          *string `json:"contact_number,omitempty"`
	Email                  *string `json:"email,omitempty"`
	DateOfJoining          string  `json:"date_of_joining"`
	Status                 string  `json:"status"`
	AnnualLeaveEntitlement int     `json:"annual_leave_entitlement"`
	AnnualLeaveTaken       int     `json:"annual_leave_taken"`
	AnnualLeaveRemaining   int     `json:"annual_leave_remaining"`
	SickLeaveEntitlement   int     `json:"sick_leave_entitlement"`
	SickLeaveTaken         int     `json:"sick_leave_taken"`
	SickLeaveRemaining     int     `json:"sick_leave_remaining"`
	CreatedAt              string  `json:"created_at"`
	UpdatedAt              string  `json:"updated_at"`
}

func ToResponse(o Officer) OfficerResponse {
	return OfficerResponse{
		ID:                     o.ID,
		AONumber:               o.AONumber,
		PCNumber:               o.PCNumber,
		FirstName:              o.FirstName,
		LastName:               o.LastName,
		Rank:                   o.Rank,
		Station:                o.Station,
		ContactNumber:          o.ContactNumber,
		Email:                  o.Email,
		DateOfJoining:          o.DateOfJoining.Format("2006-01-02"),
		Status:                 string(o.Status),
		AnnualLeaveEntitlement: o.AnnualLeaveEntitlement,
		AnnualLeaveTaken:       o.AnnualLeaveTaken,
		AnnualLeaveRemaining:   o.AnnualLeaveRemaining(),
		SickLeaveEntitlement:   o.SickLeaveEntitlement,
		SickLeaveTaken:         o.SickLeaveTaken,
		SickLeaveRemaining:     o.SickLeaveRemaining(),
		CreatedAt:              o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              o.UpdatedAt.Format(time.RFC3339),
	}
}
