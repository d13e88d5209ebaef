package employeedto

import "github.com/comissio/commission-service/internal/domain"

type RegisterEmployeeInput struct {
	UserID string
	Name   string
	Email  string
	Status domain.EmployeeStatus
}

type UpdateEmployeeInput struct {
	Status domain.EmployeeStatus
}
