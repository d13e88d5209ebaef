package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/comissio/commission-service/internal/domain"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/models"
)

type DefaultEmployeeRepository struct {
	DB *gorm.DB
}

func NewDefaultEmployeeRepository(db *gorm.DB) *DefaultEmployeeRepository {
	return &DefaultEmployeeRepository{DB: db}
}

func (r *DefaultEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	return dbFrom(ctx, r.DB).Create(mappers.ToGORMEmployee(employee)).Error
}

func (r *DefaultEmployeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	return dbFrom(ctx, r.DB).Save(mappers.ToGORMEmployee(employee)).Error
}

func (r *DefaultEmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	var model models.EmployeeModel
	if err := dbFrom(ctx, r.DB).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return mappers.ToDomainEmployee(&model), nil
}

func (r *DefaultEmployeeRepository) GetByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	var model models.EmployeeModel
	if err := dbFrom(ctx, r.DB).First(&model, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return mappers.ToDomainEmployee(&model), nil
}

func (r *DefaultEmployeeRepository) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.DB).Model(&models.EmployeeModel{}).
		Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultEmployeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	var employeeModels []models.EmployeeModel
	if err := dbFrom(ctx, r.DB).Order("name ASC").Find(&employeeModels).Error; err != nil {
		return nil, err
	}
	employees := make([]*domain.Employee, 0, len(employeeModels))
	for i := range employeeModels {
		employees = append(employees, mappers.ToDomainEmployee(&employeeModels[i]))
	}
	return employees, nil
}
