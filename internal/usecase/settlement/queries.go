package settlement

import (
	"context"

	"github.com/comissio/commission-service/internal/domain"
	settlementdto "github.com/comissio/commission-service/internal/usecase/dto/settlement"
)

func (uc *DefaultSettlementUsecase) GetPaymentByID(ctx context.Context, id string) (*domain.CommissionPayment, error) {
	return uc.PaymentRepo.GetByID(ctx, id)
}

func (uc *DefaultSettlementUsecase) ListPayments(ctx context.Context, input settlementdto.ListPaymentsInput) (*settlementdto.PaymentPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := domain.PaymentFilter{
		EmployeeID: input.EmployeeID,
		DateFrom:   input.DateFrom,
		DateTo:     input.DateTo,
	}
	payments, total, err := uc.PaymentRepo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}
	return &settlementdto.PaymentPage{
		Payments: payments,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}
