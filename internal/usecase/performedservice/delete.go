package performedservice

import (
	"context"
	"fmt"

	"github.com/comissio/commission-service/internal/domain"
)

// Delete hard-deletes a pending record. Paid and cancelled records are
// financial history and stay.
func (uc *DefaultPerformedServiceUsecase) Delete(ctx context.Context, id string) error {
	service, err := uc.ServiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if service.Status.Terminal() {
		return fmt.Errorf("%w: cannot delete service in status %s",
			domain.ErrInvalidStateTransition, service.Status)
	}
	return uc.ServiceRepo.DeletePending(ctx, id)
}
