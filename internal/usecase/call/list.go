package call

import (
	"context"

	domain "github.com/andreamorim18/helpdesk/internal/domain/call"
	"github.com/andreamorim18/helpdesk/internal/models"
)

type ListCalls struct {
	repo domain.Repository
}

func NewListCalls(repo domain.Repository) *ListCalls {
	return &ListCalls{repo: repo}
}

// Execute narrows visibility by role before the optional status filter:
// clients see their own calls, technicians their assignments, admin all.
func (uc *ListCalls) Execute(
	ctx context.Context,
	requesterID uint,
	requesterRole string,
	status string,
) ([]models.Call, error) {

	filter := domain.ListFilter{Status: status}

	switch requesterRole {
	case models.RoleClient:
		filter.ClientID = requesterID
	case models.RoleTechnician:
		filter.TechnicianID = requesterID
	}

	return uc.repo.ListCalls(ctx, filter)
}
