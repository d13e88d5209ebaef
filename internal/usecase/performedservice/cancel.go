package performedservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/comissio/commission-service/internal/domain"
)

// Cancel voids a pending service: status goes to CANCELLED and the owed
// commission is reset to zero, not merely frozen.
func (uc *DefaultPerformedServiceUsecase) Cancel(ctx context.Context, id string) (*domain.PerformedService, error) {
	service, err := uc.ServiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service.Status != domain.StatusCommissionPending {
		return nil, fmt.Errorf("%w: cannot cancel service in status %s",
			domain.ErrInvalidStateTransition, service.Status)
	}

	err = uc.ServiceRepo.TransitionStatus(ctx, id,
		domain.StatusCommissionPending, domain.StatusCancelled, true)
	if err != nil {
		return nil, err
	}

	service.Status = domain.StatusCancelled
	service.CommissionAmount = decimal.Zero

	if uc.Metrics != nil {
		if serviceType, stErr := uc.ServiceTypeRepo.GetByID(ctx, service.ServiceTypeID); stErr == nil {
			uc.Metrics.RecordServiceCancelled(serviceType.Name)
		}
	}
	return service, nil
}
