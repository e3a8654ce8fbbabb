package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/andreamorim18/helpdesk/internal/domain/call"
	"github.com/andreamorim18/helpdesk/internal/models"
)

type CallGormRepository struct {
	db *gorm.DB
}

func NewCallGormRepository(db *gorm.DB) *CallGormRepository {
	return &CallGormRepository{db: db}
}

// --------------------------------------------------
// Directories
// --------------------------------------------------

func (r *CallGormRepository) FindTechnician(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RoleTechnician).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *CallGormRepository) FindActiveServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Call
// --------------------------------------------------

func (r *CallGormRepository) CreateCall(
	ctx context.Context,
	call *models.Call,
) error {
	return r.db.WithContext(ctx).Create(call).Error
}

func (r *CallGormRepository) GetCall(
	ctx context.Context,
	id uint,
) (*models.Call, error) {

	var c models.Call
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Technician").
		Preload("Services").
		Preload("Services.Service").
		First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CallGormRepository) ListCalls(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Call, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Technician").
		Preload("Services").
		Preload("Services.Service")

	if filter.ClientID != 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.TechnicianID != 0 {
		q = q.Where("technician_id = ?", filter.TechnicianID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var calls []models.Call
	if err := q.
		Order("created_at DESC").
		Find(&calls).Error; err != nil {
		return nil, err
	}
	return calls, nil
}

func (r *CallGormRepository) UpdateCall(
	ctx context.Context,
	call *models.Call,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Call{}).
		Where("id = ?", call.ID).
		Updates(map[string]any{
			"title":       call.Title,
			"description": call.Description,
			"status":      call.Status,
		}).Error
}

func (r *CallGormRepository) ReplaceCallServices(
	ctx context.Context,
	callID uint,
	items []models.CallService,
	totalValue float64,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Where("call_id = ?", callID).
			Delete(&models.CallService{}).Error; err != nil {
			return err
		}

		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		// Total is written inside the same transaction so it can never
		// diverge from the rows it summarizes.
		return tx.
			Model(&models.Call{}).
			Where("id = ?", callID).
			Update("total_value", totalValue).Error
	})
}

func (r *CallGormRepository) DeleteCall(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Where("call_id = ?", id).
			Delete(&models.CallService{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Call{}, id).Error
	})
}

// Compile-time check
var _ domain.Repository = (*CallGormRepository)(nil)
