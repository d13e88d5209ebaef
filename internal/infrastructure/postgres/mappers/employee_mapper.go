package mappers

import (
	"github.com/comissio/commission-service/internal/domain"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/models"
)

func ToGORMEmployee(employee *domain.Employee) *models.EmployeeModel {
	return &models.EmployeeModel{
		ID:        employee.ID,
		UserID:    employee.UserID,
		Name:      employee.Name,
		Email:     employee.Email,
		Status:    string(employee.Status),
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}
}

func ToDomainEmployee(model *models.EmployeeModel) *domain.Employee {
	return &domain.Employee{
		ID:        model.ID,
		UserID:    model.UserID,
		Name:      model.Name,
		Email:     model.Email,
		Status:    domain.EmployeeStatus(model.Status),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
