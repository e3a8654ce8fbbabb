package call

import (
	"context"

	"github.com/andreamorim18/helpdesk/internal/models"
)

// ListFilter narrows ListCalls to what the requester may see. Zero values
// mean "no restriction" for that field.
type ListFilter struct {
	ClientID     uint
	TechnicianID uint
	Status       string
}

// Repository is the storage contract for calls. Lookups by id return
// ErrNotFound when no row matches; any other error is a storage failure
// and must be surfaced unchanged.
type Repository interface {
	// -------- Directories --------
	FindTechnician(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	FindActiveServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Call --------
	CreateCall(
		ctx context.Context,
		call *models.Call,
	) error

	GetCall(
		ctx context.Context,
		id uint,
	) (*models.Call, error)

	ListCalls(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Call, error)

	UpdateCall(
		ctx context.Context,
		call *models.Call,
	) error

	// ReplaceCallServices atomically discards every join row for the call,
	// inserts the fresh snapshots and writes the new total, all in one
	// transaction.
	ReplaceCallServices(
		ctx context.Context,
		callID uint,
		items []models.CallService,
		totalValue float64,
	) error

	// DeleteCall removes the call and cascades its join rows.
	DeleteCall(
		ctx context.Context,
		id uint,
	) error
}
