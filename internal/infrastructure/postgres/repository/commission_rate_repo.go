package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/comissio/commission-service/internal/domain"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/models"
)

type DefaultCommissionOverrideRepository struct {
	DB *gorm.DB
}

func NewDefaultCommissionOverrideRepository(db *gorm.DB) *DefaultCommissionOverrideRepository {
	return &DefaultCommissionOverrideRepository{DB: db}
}

func (r *DefaultCommissionOverrideRepository) Create(ctx context.Context, override *domain.CommissionOverride) error {
	return dbFrom(ctx, r.DB).Create(mappers.ToGORMOverride(override)).Error
}

func (r *DefaultCommissionOverrideRepository) Update(ctx context.Context, override *domain.CommissionOverride) error {
	return dbFrom(ctx, r.DB).Save(mappers.ToGORMOverride(override)).Error
}

func (r *DefaultCommissionOverrideRepository) GetByID(ctx context.Context, id string) (*domain.CommissionOverride, error) {
	var model models.CommissionOverrideModel
	if err := dbFrom(ctx, r.DB).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRateNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOverride(&model), nil
}

func (r *DefaultCommissionOverrideRepository) GetByEmployeeAndServiceType(ctx context.Context, employeeID, serviceTypeID string) (*domain.CommissionOverride, error) {
	var model models.CommissionOverrideModel
	err := dbFrom(ctx, r.DB).
		First(&model, "employee_id = ? AND service_type_id = ?", employeeID, serviceTypeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRateNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOverride(&model), nil
}

func (r *DefaultCommissionOverrideRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*domain.CommissionOverride, error) {
	return r.list(ctx, "employee_id = ?", employeeID)
}

func (r *DefaultCommissionOverrideRepository) ListByServiceType(ctx context.Context, serviceTypeID string) ([]*domain.CommissionOverride, error) {
	return r.list(ctx, "service_type_id = ?", serviceTypeID)
}

func (r *DefaultCommissionOverrideRepository) List(ctx context.Context) ([]*domain.CommissionOverride, error) {
	return r.list(ctx, "")
}

func (r *DefaultCommissionOverrideRepository) list(ctx context.Context, query string, args ...any) ([]*domain.CommissionOverride, error) {
	var overrideModels []models.CommissionOverrideModel
	db := dbFrom(ctx, r.DB)
	if query != "" {
		db = db.Where(query, args...)
	}
	if err := db.Order("created_at ASC").Find(&overrideModels).Error; err != nil {
		return nil, err
	}
	overrides := make([]*domain.CommissionOverride, 0, len(overrideModels))
	for i := range overrideModels {
		overrides = append(overrides, mappers.ToDomainOverride(&overrideModels[i]))
	}
	return overrides, nil
}

func (r *DefaultCommissionOverrideRepository) Delete(ctx context.Context, id string) error {
	return dbFrom(ctx, r.DB).Delete(&models.CommissionOverrideModel{}, "id = ?", id).Error
}

type DefaultCommissionDefaultRepository struct {
	DB *gorm.DB
}

func NewDefaultCommissionDefaultRepository(db *gorm.DB) *DefaultCommissionDefaultRepository {
	return &DefaultCommissionDefaultRepository{DB: db}
}

func (r *DefaultCommissionDefaultRepository) Create(ctx context.Context, def *domain.CommissionDefault) error {
	return dbFrom(ctx, r.DB).Create(mappers.ToGORMDefault(def)).Error
}

func (r *DefaultCommissionDefaultRepository) Update(ctx context.Context, def *domain.CommissionDefault) error {
	return dbFrom(ctx, r.DB).Save(mappers.ToGORMDefault(def)).Error
}

func (r *DefaultCommissionDefaultRepository) GetByID(ctx context.Context, id string) (*domain.CommissionDefault, error) {
	var model models.CommissionDefaultModel
	if err := dbFrom(ctx, r.DB).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRateNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDefault(&model), nil
}

func (r *DefaultCommissionDefaultRepository) GetByServiceType(ctx context.Context, serviceTypeID string) (*domain.CommissionDefault, error) {
	var model models.CommissionDefaultModel
	if err := dbFrom(ctx, r.DB).First(&model, "service_type_id = ?", serviceTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRateNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDefault(&model), nil
}

func (r *DefaultCommissionDefaultRepository) List(ctx context.Context) ([]*domain.CommissionDefault, error) {
	var defaultModels []models.CommissionDefaultModel
	if err := dbFrom(ctx, r.DB).Order("created_at ASC").Find(&defaultModels).Error; err != nil {
		return nil, err
	}
	defaults := make([]*domain.CommissionDefault, 0, len(defaultModels))
	for i := range defaultModels {
		defaults = append(defaults, mappers.ToDomainDefault(&defaultModels[i]))
	}
	return defaults, nil
}

func (r *DefaultCommissionDefaultRepository) Delete(ctx context.Context, id string) error {
	return dbFrom(ctx, r.DB).Delete(&models.CommissionDefaultModel{}, "id = ?", id).Error
}
