package performedservice

import (
	"context"
	"fmt"
	"time"

	"github.com/comissio/commission-service/internal/domain"
	servicedto "github.com/comissio/commission-service/internal/usecase/dto/service"
)

// Amend changes price and/or service date while the record is still
// COMMISSION_PENDING. A date-only amendment never touches the commission.
// A price change to a different value re-resolves the rate with the rules
// in effect now; if resolution fails nothing is persisted.
func (uc *DefaultPerformedServiceUsecase) Amend(ctx context.Context, id string, input servicedto.UpdatePerformedServiceInput) (*domain.PerformedService, error) {
	service, err := uc.ServiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service.Status.Terminal() {
		return nil, fmt.Errorf("%w: cannot amend service in status %s",
			domain.ErrInvalidStateTransition, service.Status)
	}

	recompute := false
	if input.Price != nil && !service.Price.Equal(*input.Price) {
		if !input.Price.IsPositive() {
			return nil, domain.ErrNonPositivePrice
		}
		service.Price = *input.Price
		recompute = true
	}
	if input.ServiceDate != nil {
		serviceDate, err := validateServiceDate(*input.ServiceDate)
		if err != nil {
			return nil, err
		}
		service.ServiceDate = serviceDate
	}

	if recompute {
		rate, err := uc.Resolver.Resolve(ctx, service.EmployeeID, service.ServiceTypeID)
		if err != nil {
			return nil, err
		}
		amount, err := domain.ComputeCommission(service.Price, rate.Percentage)
		if err != nil {
			return nil, err
		}
		service.CommissionAmount = amount
	}

	service.UpdatedAt = time.Now().UTC()
	if err := uc.ServiceRepo.UpdatePending(ctx, service); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordServiceAmended(recompute)
	}
	return service, nil
}
