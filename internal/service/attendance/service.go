package attendance

import (
	"context"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/attendance"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/officer"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/worktime"
)

type AttendanceServiceImpl struct {
	attendance.TimeEntryRepository
	officer.OfficerRepository
}

func NewAttendanceService(timeEntryRepo attendance.TimeEntryRepository, officerRepo officer.OfficerRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		TimeEntryRepository: timeEntryRepo,
		OfficerRepository:   officerRepo,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, identity user.Identity, req attendance.ClockInRequest) (attendance.TimeEntryResponse, error) {
	if err := identity.Authorize(true); err != nil {
		return attendance.TimeEntryResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return attendance.TimeEntryResponse{}, err
	}

	o, err := s.OfficerRepository.GetByID(ctx, req.OfficerID)
	if err != nil {
		return attendance.TimeEntryResponse{}, err
	}
	if o.Status != officer.StatusActive {
		return attendance.TimeEntryResponse{}, officer.ErrOfficerInactive
	}

	now := time.Now()
	entry := attendance.TimeEntry{
		OfficerID: req.OfficerID,
		ClockIn:   now,
		ShiftType: attendance.ShiftType(req.ShiftType),
		Notes:     req.Notes,
		CreatedBy: identity.UserID,
	}

	created, err := s.TimeEntryRepository.CreateIfNoOpenEntry(ctx, entry, worktime.StartOfDay(now))
	if err != nil {
		return attendance.TimeEntryResponse{}, err
	}
	return attendance.ToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, identity user.Identity, req attendance.ClockOutRequest) (attendance.TimeEntryResponse, error) {
	if err := identity.Authorize(true); err != nil {
		return attendance.TimeEntryResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return attendance.TimeEntryResponse{}, err
	}

	now := time.Now()
	entry, err := s.TimeEntryRepository.GetOpenEntry(ctx, req.OfficerID, worktime.StartOfDay(now))
	if err != nil {
		return attendance.TimeEntryResponse{}, err
	}

	hours := worktime.HoursWorked(entry.ClockIn, now, req.BreakMinutes)

	entry.ClockOut = &now
	entry.BreakMinutes = req.BreakMinutes
	entry.HoursWorked = &hours
	entry.IsOvertime = worktime.IsOvertime(hours)

	// Clock-out notes append to any clock-in notes instead of
	// overwriting them.
	if req.Notes != nil && *req.Notes != "" {
		combined := *req.Notes
		if entry.Notes != nil && *entry.Notes != "" {
			combined = *entry.Notes + "\n" + *req.Notes
		}
		entry.Notes = &combined
	}

	if err := s.TimeEntryRepository.CloseEntry(ctx, entry); err != nil {
		return attendance.TimeEntryResponse{}, err
	}
	return attendance.ToResponse(entry), nil
}

// ListOnDuty implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListOnDuty(ctx context.Context, identity user.Identity) ([]attendance.TimeEntryResponse, error) {
	if err := identity.Authorize(false); err != nil {
		return nil, err
	}

	entries, err := s.TimeEntryRepository.ListOnDuty(ctx, worktime.StartOfDay(time.Now()))
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, attendance.ToResponse(e))
	}
	return responses, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, identity user.Identity, filter attendance.TimeEntryFilter) ([]attendance.TimeEntryResponse, int64, error) {
	if err := identity.Authorize(false); err != nil {
		return nil, 0, err
	}
	filter.Normalize()

	entries, total, err := s.TimeEntryRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]attendance.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, attendance.ToResponse(e))
	}
	return responses, total, nil
}
