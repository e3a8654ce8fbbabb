package call

import (
	"context"
	"errors"

	domain "github.com/andreamorim18/helpdesk/internal/domain/call"
	"github.com/andreamorim18/helpdesk/internal/httperr"
	"github.com/andreamorim18/helpdesk/internal/models"
)

type GetCall struct {
	repo domain.Repository
}

func NewGetCall(repo domain.Repository) *GetCall {
	return &GetCall{repo: repo}
}

func (uc *GetCall) Execute(
	ctx context.Context,
	requesterID uint,
	requesterRole string,
	callID uint,
) (*models.Call, error) {

	c, err := uc.repo.GetCall(ctx, callID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeNotFound)
		}
		return nil, err
	}

	if !domain.CanView(requesterRole, requesterID, c.ClientID, c.TechnicianID) {
		return nil, httperr.ErrBusiness(domain.CodeAccessDenied)
	}

	return c, nil
}
