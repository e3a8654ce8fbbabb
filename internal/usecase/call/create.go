package call

import (
	"context"
	"errors"

	"github.com/andreamorim18/helpdesk/internal/audit"
	domain "github.com/andreamorim18/helpdesk/internal/domain/call"
	"github.com/andreamorim18/helpdesk/internal/httperr"
	"github.com/andreamorim18/helpdesk/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateCallInput struct {
	RequesterID uint

	Title        string
	Description  string
	TechnicianID uint
	ServiceIDs   []uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateCall struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateCall(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateCall {
	return &CreateCall{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateCall) Execute(
	ctx context.Context,
	in CreateCallInput,
) (*models.Call, error) {

	technician, err := uc.repo.FindTechnician(ctx, in.TechnicianID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeInvalidTechnician)
		}
		return nil, err
	}
	if technician.Role != models.RoleTechnician {
		return nil, httperr.ErrBusiness(domain.CodeInvalidTechnician)
	}

	services, err := uc.repo.FindActiveServicesByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if !domain.ResolvedSetMatches(in.ServiceIDs, services) {
		return nil, httperr.ErrBusiness(domain.CodeInvalidServices)
	}

	c := &models.Call{
		Title:        in.Title,
		Description:  in.Description,
		Status:       string(domain.InitialStatus()),
		TotalValue:   domain.TotalOf(services),
		ClientID:     in.RequesterID,
		TechnicianID: technician.ID,
		Services:     domain.Snapshot(0, services),
	}

	if err := uc.repo.CreateCall(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.RequesterID,
		Action:   "call_created",
		Entity:   "call",
		EntityID: &c.ID,
	})

	return uc.repo.GetCall(ctx, c.ID)
}
