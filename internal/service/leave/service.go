package leave

import (
	"context"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/leave"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/officer"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/database"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/validator"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/worktime"
	"github.com/ethekwini-metro/pts-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	officer.OfficerRepository
}

func NewLeaveService(db *database.DB, leaveRepo leave.LeaveRepository, officerRepo officer.OfficerRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                db,
		LeaveRepository:   leaveRepo,
		OfficerRepository: officerRepo,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, identity user.Identity, req leave.ApplyRequest) (leave.LeaveResponse, error) {
	if err := identity.Authorize(true); err != nil {
		return leave.LeaveResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	o, err := s.OfficerRepository.GetByID(ctx, req.OfficerID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	days := worktime.LeaveDays(start, end, req.ExcludeWeekendsOrDefault())

	switch leave.Type(req.LeaveType) {
	case leave.TypeAnnual:
		if days > o.AnnualLeaveRemaining() {
			return leave.LeaveResponse{}, leave.ErrInsufficientBalance
		}
	case leave.TypeSick:
		if days > o.SickLeaveRemaining() {
			return leave.LeaveResponse{}, leave.ErrInsufficientBalance
		}
	}

	l := leave.Leave{
		OfficerID:     req.OfficerID,
		LeaveType:     leave.Type(req.LeaveType),
		StartDate:     start,
		EndDate:       end,
		DaysRequested: days,
		Status:        leave.StatusPending,
		Reason:        req.Reason,
	}

	created, err := s.LeaveRepository.Create(ctx, l)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(created), nil
}

// Decide implements leave.LeaveService. The status flip and the officer
// balance credit commit in one transaction or not at all.
func (s *LeaveServiceImpl) Decide(ctx context.Context, identity user.Identity, leaveID string, req leave.DecideRequest) (leave.LeaveResponse, error) {
	if err := identity.Authorize(true); err != nil {
		return leave.LeaveResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	var decided leave.Leave
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		l, err := s.LeaveRepository.GetByID(txCtx, leaveID)
		if err != nil {
			return err
		}
		if l.Status != leave.StatusPending {
			return leave.ErrAlreadyProcessed
		}

		now := time.Now()
		approver := identity.UserID
		l.ApprovedBy = &approver
		l.ApprovedAt = &now

		switch leave.DecideAction(req.Action) {
		case leave.ActionApprove:
			l.Status = leave.StatusApproved
			days := l.DaysRequested
			l.DaysApproved = &days

			switch l.LeaveType {
			case leave.TypeAnnual:
				if err := s.OfficerRepository.IncrementLeaveTaken(txCtx, l.OfficerID, officer.CategoryAnnual, days); err != nil {
					return err
				}
			case leave.TypeSick:
				if err := s.OfficerRepository.IncrementLeaveTaken(txCtx, l.OfficerID, officer.CategorySick, days); err != nil {
					return err
				}
			}
		case leave.ActionReject:
			l.Status = leave.StatusRejected
			l.RejectionReason = req.RejectionReason
		}

		if err := s.LeaveRepository.UpdateDecision(txCtx, l); err != nil {
			return err
		}
		decided = l
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(decided), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, identity user.Identity, leaveID string) (leave.LeaveResponse, error) {
	if err := identity.Authorize(false); err != nil {
		return leave.LeaveResponse{}, err
	}

	l, err := s.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(l), nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context, identity user.Identity) ([]leave.LeaveResponse, error) {
	if err := identity.Authorize(false); err != nil {
		return nil, err
	}

	leaves, err := s.LeaveRepository.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.ToResponse(l))
	}
	return responses, nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, identity user.Identity, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	if err := identity.Authorize(false); err != nil {
		return nil, err
	}

	leaves, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.ToResponse(l))
	}
	return responses, nil
}
