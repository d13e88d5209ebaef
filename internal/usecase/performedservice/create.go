package performedservice

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/comissio/commission-service/internal/domain"
	servicedto "github.com/comissio/commission-service/internal/usecase/dto/service"
)

// Create registers a performed service in COMMISSION_PENDING state. The
// commission amount is computed from the rate in effect right now; without
// a resolvable rate the record is not created.
func (uc *DefaultPerformedServiceUsecase) Create(ctx context.Context, input servicedto.CreatePerformedServiceInput) (*domain.PerformedService, error) {
	if !input.Price.IsPositive() {
		return nil, domain.ErrNonPositivePrice
	}
	serviceDate, err := validateServiceDate(input.ServiceDate)
	if err != nil {
		return nil, err
	}

	if _, err := uc.EmployeeRepo.GetByID(ctx, input.EmployeeID); err != nil {
		return nil, err
	}
	serviceType, err := uc.ServiceTypeRepo.GetByID(ctx, input.ServiceTypeID)
	if err != nil {
		return nil, err
	}

	rate, err := uc.Resolver.Resolve(ctx, input.EmployeeID, input.ServiceTypeID)
	if err != nil {
		return nil, err
	}
	amount, err := domain.ComputeCommission(input.Price, rate.Percentage)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	service := &domain.PerformedService{
		ID:               uuid.NewString(),
		EmployeeID:       input.EmployeeID,
		ServiceTypeID:    input.ServiceTypeID,
		Price:            input.Price,
		CommissionAmount: amount,
		ServiceDate:      serviceDate,
		Status:           domain.StatusCommissionPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.ServiceRepo.Create(ctx, service); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordServiceCreated(serviceType.Name)
	}
	return service, nil
}
