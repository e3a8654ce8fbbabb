package call

import (
	"context"
	"errors"

	"github.com/andreamorim18/helpdesk/internal/audit"
	domain "github.com/andreamorim18/helpdesk/internal/domain/call"
	"github.com/andreamorim18/helpdesk/internal/httperr"
)

type DeleteCall struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteCall(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteCall {
	return &DeleteCall{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteCall) Execute(
	ctx context.Context,
	requesterID uint,
	requesterRole string,
	callID uint,
) error {

	c, err := uc.repo.GetCall(ctx, callID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness(domain.CodeNotFound)
		}
		return err
	}

	if !domain.CanDelete(requesterRole, requesterID, c.ClientID) {
		return httperr.ErrBusiness(domain.CodeAccessDenied)
	}

	if err := uc.repo.DeleteCall(ctx, c.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "call_deleted",
		Entity:   "call",
		EntityID: &callID,
	})

	return nil
}
