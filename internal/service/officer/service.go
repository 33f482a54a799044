package officer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/audit"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/officer"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/validator"
)

type OfficerServiceImpl struct {
	officer.OfficerRepository
	auditRepo audit.AuditRepository
}

func NewOfficerService(officerRepo officer.OfficerRepository, auditRepo audit.AuditRepository) officer.OfficerService {
	return &OfficerServiceImpl{
		OfficerRepository: officerRepo,
		auditRepo:         auditRepo,
	}
}

// appendAudit records the mutation opportunistically. A failed audit write
// never fails the operation it records.
func (s *OfficerServiceImpl) appendAudit(ctx context.Context, identity user.Identity, action audit.Action, entityID string, before, after any) {
	entry := audit.Entry{
		UserID:     identity.UserID,
		Action:     action,
		EntityType: "officer",
		EntityID:   entityID,
	}
	if identity.SourceAddress != "" {
		addr := identity.SourceAddress
		entry.SourceAddress = &addr
	}
	if before != nil {
		entry.Before, _ = json.Marshal(before)
	}
	if after != nil {
		entry.After, _ = json.Marshal(after)
	}
	if err := s.auditRepo.Append(ctx, entry); err != nil {
		slog.Warn("failed to append audit entry", "entity_id", entityID, "error", err)
	}
}

// Create implements officer.OfficerService.
func (s *OfficerServiceImpl) Create(ctx context.Context, identity user.Identity, req officer.CreateOfficerRequest) (officer.OfficerResponse, error) {
	if err := identity.Authorize(true); err != nil {
		return officer.OfficerResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return officer.OfficerResponse{}, err
	}

	exists, err := s.OfficerRepository.ExistsByNumbers(ctx, req.AONumber, req.PCNumber, nil)
	if err != nil {
		return officer.OfficerResponse{}, fmt.Errorf("failed to check officer numbers: %w", err)
	}
	if exists {
		return officer.OfficerResponse{}, officer.ErrDuplicateNumber
	}

	doj, _ := validator.IsValidDate(req.DateOfJoining)

	o := officer.Officer{
		AONumber:               req.AONumber,
		PCNumber:               req.PCNumber,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Rank:                   req.Rank,
		Station:                req.Station,
		ContactNumber:          req.ContactNumber,
		Email:                  req.Email,
		DateOfJoining:          doj,
		Status:                 officer.StatusActive,
		AnnualLeaveEntitlement: officer.DefaultAnnualLeaveEntitlement,
		SickLeaveEntitlement:   officer.DefaultSickLeaveEntitlement,
	}
	if req.Status != nil {
		o.Status = officer.Status(*req.Status)
	}
	if req.AnnualLeaveEntitlement != nil {
		o.AnnualLeaveEntitlement = *req.AnnualLeaveEntitlement
	}
	if req.SickLeaveEntitlement != nil {
		o.SickLeaveEntitlement = *req.SickLeaveEntitlement
	}

	created, err := s.OfficerRepository.Create(ctx, o)
	if err != nil {
		return officer.OfficerResponse{}, err
	}

	resp := officer.ToResponse(created)
	s.appendAudit(ctx, identity, audit.ActionCreate, created.ID, nil, resp)
	return resp, nil
}

// Get implements officer.OfficerService.
func (s *OfficerServiceImpl) Get(ctx context.Context, identity user.Identity, id string) (officer.OfficerResponse, error) {
	if err := identity.Authorize(false); err != nil {
		return officer.OfficerResponse{}, err
	}

	o, err := s.OfficerRepository.GetByID(ctx, id)
	if err != nil {
		return officer.OfficerResponse{}, err
	}
	return officer.ToResponse(o), nil
}

// List implements officer.OfficerService.
func (s *OfficerServiceImpl) List(ctx context.Context, identity user.Identity, filter officer.OfficerFilter) ([]officer.OfficerResponse, int64, error) {
	if err := identity.Authorize(false); err != nil {
		return nil, 0, err
	}
	filter.Normalize()

	officers, total, err := s.OfficerRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]officer.OfficerResponse, 0, len(officers))
	for _, o := range officers {
		responses = append(responses, officer.ToResponse(o))
	}
	return responses, total, nil
}

// Update implements officer.OfficerService.
func (s *OfficerServiceImpl) Update(ctx context.Context, identity user.Identity, id string, req officer.UpdateOfficerRequest) (officer.OfficerResponse, error) {
	if err := identity.Authorize(true); err != nil {
		return officer.OfficerResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return officer.OfficerResponse{}, err
	}

	before, err := s.OfficerRepository.GetByID(ctx, id)
	if err != nil {
		return officer.OfficerResponse{}, err
	}

	if req.AONumber != nil || req.PCNumber != nil {
		ao := before.AONumber
		if req.AONumber != nil {
			ao = *req.AONumber
		}
		pc := before.PCNumber
		if req.PCNumber != nil {
			pc = *req.PCNumber
		}
		exists, err := s.OfficerRepository.ExistsByNumbers(ctx, ao, pc, &id)
		if err != nil {
			return officer.OfficerResponse{}, fmt.Errorf("failed to check officer numbers: %w", err)
		}
		if exists {
			return officer.OfficerResponse{}, officer.ErrDuplicateNumber
		}
	}

	if err := s.OfficerRepository.Update(ctx, id, req); err != nil {
		return officer.OfficerResponse{}, err
	}

	after, err := s.OfficerRepository.GetByID(ctx, id)
	if err != nil {
		return officer.OfficerResponse{}, err
	}

	resp := officer.ToResponse(after)
	s.appendAudit(ctx, identity, audit.ActionUpdate, id, officer.ToResponse(before), resp)
	return resp, nil
}

// Deactivate implements officer.OfficerService.
func (s *OfficerServiceImpl) Deactivate(ctx context.Context, identity user.Identity, id string) error {
	if err := identity.Authorize(true); err != nil {
		return err
	}

	before, err := s.OfficerRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.OfficerRepository.SetStatus(ctx, id, officer.StatusInactive); err != nil {
		return err
	}

	s.appendAudit(ctx, identity, audit.ActionDelete, id, officer.ToResponse(before), nil)
	return nil
}

// ListStations implements officer.OfficerService.
func (s *OfficerServiceImpl) ListStations(ctx context.Context, identity user.Identity) ([]string, error) {
	if err := identity.Authorize(false); err != nil {
		return nil, err
	}
	return s.OfficerRepository.ListStations(ctx)
}
