package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/comissio/commission-service/internal/domain"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/models"
)

type DefaultPerformedServiceRepository struct {
	DB *gorm.DB
}

func NewDefaultPerformedServiceRepository(db *gorm.DB) *DefaultPerformedServiceRepository {
	return &DefaultPerformedServiceRepository{DB: db}
}

func (r *DefaultPerformedServiceRepository) Create(ctx context.Context, service *domain.PerformedService) error {
	return dbFrom(ctx, r.DB).Create(mappers.ToGORMPerformedService(service)).Error
}

func (r *DefaultPerformedServiceRepository) GetByID(ctx context.Context, id string) (*domain.PerformedService, error) {
	var model models.PerformedServiceModel
	if err := dbFrom(ctx, r.DB).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPerformedServiceNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPerformedService(&model), nil
}

// GetByIDForUpdate takes a row lock, so the commission amount read here
// stays the amount until the transaction commits.
func (r *DefaultPerformedServiceRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.PerformedService, error) {
	var model models.PerformedServiceModel
	err := dbFrom(ctx, r.DB).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPerformedServiceNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPerformedService(&model), nil
}

func (r *DefaultPerformedServiceRepository) List(ctx context.Context, filter domain.PerformedServiceFilter, page, limit int) ([]*domain.PerformedService, int64, error) {
	baseQuery := dbFrom(ctx, r.DB).Model(&models.PerformedServiceModel{})

	if filter.EmployeeID != "" {
		baseQuery = baseQuery.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		baseQuery = baseQuery.Where("status = ?", filter.Status)
	}
	if !filter.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("service_date >= ?", filter.DateFrom)
	}
	if !filter.DateTo.IsZero() {
		baseQuery = baseQuery.Where("service_date <= ?", filter.DateTo)
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var serviceModels []models.PerformedServiceModel
	err := baseQuery.
		Order("service_date DESC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&serviceModels).Error
	if err != nil {
		return nil, 0, err
	}

	services := make([]*domain.PerformedService, 0, len(serviceModels))
	for i := range serviceModels {
		services = append(services, mappers.ToDomainPerformedService(&serviceModels[i]))
	}
	return services, total, nil
}

// UpdatePending writes the amendable fields guarded by the status column:
// no row matches when the record left COMMISSION_PENDING since it was read.
func (r *DefaultPerformedServiceRepository) UpdatePending(ctx context.Context, service *domain.PerformedService) error {
	result := dbFrom(ctx, r.DB).Model(&models.PerformedServiceModel{}).
		Where("id = ? AND status = ?", service.ID, domain.StatusCommissionPending).
		Updates(map[string]any{
			"price":             service.Price,
			"commission_amount": service.CommissionAmount,
			"service_date":      service.ServiceDate,
			"updated_at":        service.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvalidStateTransition
	}
	return nil
}

func (r *DefaultPerformedServiceRepository) TransitionStatus(ctx context.Context, id string, fromStatus, toStatus domain.ServiceStatus, zeroCommission bool) error {
	updates := map[string]any{
		"status":     toStatus,
		"updated_at": time.Now().UTC(),
	}
	if zeroCommission {
		updates["commission_amount"] = decimal.Zero
	}

	result := dbFrom(ctx, r.DB).Model(&models.PerformedServiceModel{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvalidStateTransition
	}
	return nil
}

func (r *DefaultPerformedServiceRepository) ListPendingForSettlement(ctx context.Context, employeeID string, upToServiceDate *time.Time) ([]*domain.PerformedService, error) {
	// The selection is locked so the amounts paid out are the amounts
	// selected; a concurrent amend waits and then loses its status guard.
	query := dbFrom(ctx, r.DB).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ? AND status = ?", employeeID, domain.StatusCommissionPending)
	if upToServiceDate != nil {
		query = query.Where("service_date <= ?", *upToServiceDate)
	}

	var serviceModels []models.PerformedServiceModel
	if err := query.Order("service_date ASC, created_at ASC").Find(&serviceModels).Error; err != nil {
		return nil, err
	}
	services := make([]*domain.PerformedService, 0, len(serviceModels))
	for i := range serviceModels {
		services = append(services, mappers.ToDomainPerformedService(&serviceModels[i]))
	}
	return services, nil
}

func (r *DefaultPerformedServiceRepository) DeletePending(ctx context.Context, id string) error {
	result := dbFrom(ctx, r.DB).
		Where("id = ? AND status = ?", id, domain.StatusCommissionPending).
		Delete(&models.PerformedServiceModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvalidStateTransition
	}
	return nil
}
