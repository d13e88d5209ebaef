package settlement

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/shopspring/decimal"

	"github.com/comissio/commission-service/internal/domain"
	publisher "github.com/comissio/commission-service/internal/infrastructure/kafka"
	settlementdto "github.com/comissio/commission-service/internal/usecase/dto/settlement"
)

// SettleBatch pays out every pending commission of one employee, optionally
// bounded by service date, in a single unit of work. A selection of zero
// records is a business-rule failure, not a no-op success, and any failure
// mid-batch rolls back every flip and payment from the batch.
func (uc *DefaultSettlementUsecase) SettleBatch(ctx context.Context, input settlementdto.SettleBatchInput) (*settlementdto.BatchReceipt, error) {
	started := time.Now()

	employee, err := uc.EmployeeRepo.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	refGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	var receipt *settlementdto.BatchReceipt
	err = uc.TxManager.Do(ctx, func(ctx context.Context) error {
		services, err := uc.ServiceRepo.ListPendingForSettlement(ctx, employee.ID, input.UpToServiceDate)
		if err != nil {
			return err
		}
		if len(services) == 0 {
			return domain.ErrNoPendingCommissions
		}

		totalPaid := decimal.Zero
		paidServiceIDs := make([]string, 0, len(services))
		paidAt := time.Now().UTC()

		for _, service := range services {
			err := uc.ServiceRepo.TransitionStatus(ctx, service.ID,
				domain.StatusCommissionPending, domain.StatusCommissionPaid, false)
			if err != nil {
				return err
			}

			payment := &domain.CommissionPayment{
				ID:                 uuid.NewString(),
				EmployeeID:         employee.ID,
				PerformedServiceID: service.ID,
				AmountPaid:         service.CommissionAmount,
				Status:             domain.PaymentPaid,
				PaymentDate:        paidAt,
			}
			if err := uc.PaymentRepo.Create(ctx, payment); err != nil {
				return err
			}

			totalPaid = totalPaid.Add(service.CommissionAmount)
			paidServiceIDs = append(paidServiceIDs, service.ID)
		}

		receipt = &settlementdto.BatchReceipt{
			EmployeeID:           employee.ID,
			EmployeeName:         employee.Name,
			Reference:            refGenerator(),
			CommissionsPaidCount: len(paidServiceIDs),
			TotalPaid:            totalPaid,
			BatchProcessTime:     paidAt,
			PaidServiceIDs:       paidServiceIDs,
		}
		return nil
	})
	if err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordBatchFailed()
		}
		return nil, err
	}

	if uc.Metrics != nil {
		total, _ := receipt.TotalPaid.Float64()
		uc.Metrics.RecordPayment("batch", total)
		uc.Metrics.RecordBatchSettled(receipt.CommissionsPaidCount, time.Since(started).Seconds())
	}
	if uc.Publisher != nil {
		go func(event publisher.BatchSettledEvent) {
			if err := uc.Publisher.PublishBatchSettled(event); err != nil {
				slog.Error("failed to publish batch settlement event", "reference", event.Reference, "error", err.Error())
			}
		}(publisher.BatchSettledEvent{
			Reference:            receipt.Reference,
			EmployeeID:           receipt.EmployeeID,
			CommissionsPaidCount: receipt.CommissionsPaidCount,
			TotalPaid:            receipt.TotalPaid.StringFixed(2),
			ProcessedAt:          receipt.BatchProcessTime.Format(time.RFC3339),
			PaidServiceIDs:       receipt.PaidServiceIDs,
		})
	}
	if uc.Notifier != nil {
		go func(to string, r settlementdto.BatchReceipt) {
			if err := uc.Notifier.SendBatchReceipt(to, &r); err != nil {
				slog.Error("failed to send settlement receipt", "reference", r.Reference, "error", err.Error())
			}
		}(employee.Email, *receipt)
	}
	return receipt, nil
}
