package performedservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/comissio/commission-service/internal/domain"
	publisher "github.com/comissio/commission-service/internal/infrastructure/kafka"
)

// Pay settles one pending service: the status flip and the payment record
// are one unit of work. The record is read under a row lock, so the amount
// paid is the amount at settlement time and a racing amend or second pay
// waits and then loses its status guard.
func (uc *DefaultPerformedServiceUsecase) Pay(ctx context.Context, id string) (*domain.PerformedService, error) {
	var service *domain.PerformedService
	var payment *domain.CommissionPayment

	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		var err error
		service, err = uc.ServiceRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if service.Status != domain.StatusCommissionPending {
			return fmt.Errorf("%w: cannot pay service in status %s",
				domain.ErrInvalidStateTransition, service.Status)
		}

		err = uc.ServiceRepo.TransitionStatus(ctx, id,
			domain.StatusCommissionPending, domain.StatusCommissionPaid, false)
		if err != nil {
			return err
		}

		payment = &domain.CommissionPayment{
			ID:                 uuid.NewString(),
			EmployeeID:         service.EmployeeID,
			PerformedServiceID: service.ID,
			AmountPaid:         service.CommissionAmount,
			Status:             domain.PaymentPaid,
			PaymentDate:        time.Now().UTC(),
		}
		return uc.PaymentRepo.Create(ctx, payment)
	})
	if err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordError("pay")
		}
		return nil, err
	}

	service.Status = domain.StatusCommissionPaid

	if uc.Metrics != nil {
		amount, _ := service.CommissionAmount.Float64()
		uc.Metrics.RecordPayment("single", amount)
	}
	if uc.Publisher != nil {
		go func(event publisher.PaymentEvent) {
			if err := uc.Publisher.PublishPayment(event); err != nil {
				slog.Error("failed to publish payment event", "payment_id", event.PaymentID, "error", err.Error())
			}
		}(publisher.PaymentEvent{
			PaymentID:          payment.ID,
			EmployeeID:         payment.EmployeeID,
			PerformedServiceID: payment.PerformedServiceID,
			AmountPaid:         payment.AmountPaid.StringFixed(2),
			PaidAt:             payment.PaymentDate.Format(time.RFC3339),
		})
	}
	return service, nil
}
