package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/comissio/commission-service/internal/domain"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/models"
)

type DefaultServiceTypeRepository struct {
	DB *gorm.DB
}

func NewDefaultServiceTypeRepository(db *gorm.DB) *DefaultServiceTypeRepository {
	return &DefaultServiceTypeRepository{DB: db}
}

func (r *DefaultServiceTypeRepository) Create(ctx context.Context, serviceType *domain.ServiceType) error {
	return dbFrom(ctx, r.DB).Create(mappers.ToGORMServiceType(serviceType)).Error
}

func (r *DefaultServiceTypeRepository) Update(ctx context.Context, serviceType *domain.ServiceType) error {
	return dbFrom(ctx, r.DB).Save(mappers.ToGORMServiceType(serviceType)).Error
}

func (r *DefaultServiceTypeRepository) GetByID(ctx context.Context, id string) (*domain.ServiceType, error) {
	var model models.ServiceTypeModel
	if err := dbFrom(ctx, r.DB).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrServiceTypeNotFound
		}
		return nil, err
	}
	return mappers.ToDomainServiceType(&model), nil
}

func (r *DefaultServiceTypeRepository) GetByName(ctx context.Context, name string) (*domain.ServiceType, error) {
	var model models.ServiceTypeModel
	if err := dbFrom(ctx, r.DB).First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrServiceTypeNotFound
		}
		return nil, err
	}
	return mappers.ToDomainServiceType(&model), nil
}

func (r *DefaultServiceTypeRepository) List(ctx context.Context) ([]*domain.ServiceType, error) {
	var serviceTypeModels []models.ServiceTypeModel
	if err := dbFrom(ctx, r.DB).Order("name ASC").Find(&serviceTypeModels).Error; err != nil {
		return nil, err
	}
	serviceTypes := make([]*domain.ServiceType, 0, len(serviceTypeModels))
	for i := range serviceTypeModels {
		serviceTypes = append(serviceTypes, mappers.ToDomainServiceType(&serviceTypeModels[i]))
	}
	return serviceTypes, nil
}

func (r *DefaultServiceTypeRepository) Delete(ctx context.Context, id string) error {
	return dbFrom(ctx, r.DB).Delete(&models.ServiceTypeModel{}, "id = ?", id).Error
}
