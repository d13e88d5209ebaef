package settlement

import (
	"context"

	"github.com/comissio/commission-service/internal/domain"
	"github.com/comissio/commission-service/internal/infrastructure/email"
	publisher "github.com/comissio/commission-service/internal/infrastructure/kafka"
	"github.com/comissio/commission-service/internal/infrastructure/metrics"
	settlementdto "github.com/comissio/commission-service/internal/usecase/dto/settlement"
)

type SettlementUsecase interface {
	SettleBatch(ctx context.Context, input settlementdto.SettleBatchInput) (*settlementdto.BatchReceipt, error)

	GetPaymentByID(ctx context.Context, id string) (*domain.CommissionPayment, error)
	ListPayments(ctx context.Context, input settlementdto.ListPaymentsInput) (*settlementdto.PaymentPage, error)
}

type DefaultSettlementUsecase struct {
	EmployeeRepo domain.EmployeeRepository
	ServiceRepo  domain.PerformedServiceRepository
	PaymentRepo  domain.CommissionPaymentRepository
	TxManager    domain.TxManager
	Publisher    *publisher.SettlementPublisher
	Notifier     *email.Notifier
	Metrics      *metrics.CommissionMetrics
}

func NewDefaultSettlementUsecase(
	employeeRepo domain.EmployeeRepository,
	serviceRepo domain.PerformedServiceRepository,
	paymentRepo domain.CommissionPaymentRepository,
	txManager domain.TxManager,
	settlementPublisher *publisher.SettlementPublisher,
	notifier *email.Notifier,
	commissionMetrics *metrics.CommissionMetrics) *DefaultSettlementUsecase {

	return &DefaultSettlementUsecase{
		EmployeeRepo: employeeRepo,
		ServiceRepo:  serviceRepo,
		PaymentRepo:  paymentRepo,
		TxManager:    txManager,
		Publisher:    settlementPublisher,
		Notifier:     notifier,
		Metrics:      commissionMetrics,
	}
}
