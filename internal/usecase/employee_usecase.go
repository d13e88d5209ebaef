package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/comissio/commission-service/internal/domain"
	employeedto "github.com/comissio/commission-service/internal/usecase/dto/employee"
)

type EmployeeUsecase interface {
	Register(ctx context.Context, input employeedto.RegisterEmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id string, input employeedto.UpdateEmployeeInput) (*domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
}

type DefaultEmployeeUsecase struct {
	employeeRepo domain.EmployeeRepository
}

func NewDefaultEmployeeUsecase(employeeRepo domain.EmployeeRepository) *DefaultEmployeeUsecase {
	return &DefaultEmployeeUsecase{employeeRepo: employeeRepo}
}

func (uc *DefaultEmployeeUsecase) Register(ctx context.Context, input employeedto.RegisterEmployeeInput) (*domain.Employee, error) {
	exists, err := uc.employeeRepo.ExistsByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmployee
	}

	status := input.Status
	if status == "" {
		status = domain.EmployeeActive
	}
	employee := &domain.Employee{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Name:      input.Name,
		Email:     input.Email,
		Status:    status,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := uc.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (uc *DefaultEmployeeUsecase) Update(ctx context.Context, id string, input employeedto.UpdateEmployeeInput) (*domain.Employee, error) {
	employee, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	employee.Status = input.Status
	employee.UpdatedAt = time.Now().UTC()
	if err := uc.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (uc *DefaultEmployeeUsecase) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return uc.employeeRepo.GetByID(ctx, id)
}

func (uc *DefaultEmployeeUsecase) GetByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	return uc.employeeRepo.GetByUserID(ctx, userID)
}

func (uc *DefaultEmployeeUsecase) List(ctx context.Context) ([]*domain.Employee, error) {
	return uc.employeeRepo.List(ctx)
}
