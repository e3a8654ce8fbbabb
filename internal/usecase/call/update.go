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

type UpdateCallInput struct {
	RequesterID   uint
	RequesterRole string
	CallID        uint

	Title       *string
	Description *string
	Status      *string
	ServiceIDs  []uint
}

// ======================================================
// USE CASE
// ======================================================

type UpdateCall struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateCall(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateCall {
	return &UpdateCall{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateCall) Execute(
	ctx context.Context,
	in UpdateCallInput,
) (*models.Call, error) {

	c, err := uc.repo.GetCall(ctx, in.CallID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeNotFound)
		}
		return nil, err
	}

	if !domain.CanUpdate(in.RequesterRole, in.RequesterID, c.TechnicianID) {
		return nil, httperr.ErrBusiness(domain.CodeAccessDenied)
	}

	if in.Status != nil && !domain.Status(*in.Status).IsValid() {
		return nil, httperr.ErrBusiness(domain.CodeInvalidStatus)
	}

	// Service-set replacement happens before the scalar patch: the join
	// rows and the recomputed total are written in one transaction.
	if in.ServiceIDs != nil {
		services, err := uc.repo.FindActiveServicesByIDs(ctx, in.ServiceIDs)
		if err != nil {
			return nil, err
		}
		if !domain.ResolvedSetMatches(in.ServiceIDs, services) {
			return nil, httperr.ErrBusiness(domain.CodeInvalidServices)
		}

		total := domain.TotalOf(services)
		items := domain.Snapshot(c.ID, services)
		if err := uc.repo.ReplaceCallServices(ctx, c.ID, items, total); err != nil {
			return nil, err
		}
		c.TotalValue = total
	}

	if in.Title != nil {
		c.Title = *in.Title
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Status != nil {
		c.Status = *in.Status
	}

	if err := uc.repo.UpdateCall(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.RequesterID,
		Action:   "call_updated",
		Entity:   "call",
		EntityID: &c.ID,
	})

	return uc.repo.GetCall(ctx, c.ID)
}
