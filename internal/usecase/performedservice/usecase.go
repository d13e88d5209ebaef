package performedservice

import (
	"context"
	"time"

	"github.com/comissio/commission-service/internal/domain"
	publisher "github.com/comissio/commission-service/internal/infrastructure/kafka"
	"github.com/comissio/commission-service/internal/infrastructure/metrics"
	"github.com/comissio/commission-service/internal/usecase"
	servicedto "github.com/comissio/commission-service/internal/usecase/dto/service"
)

type PerformedServiceUsecase interface {
	Create(ctx context.Context, input servicedto.CreatePerformedServiceInput) (*domain.PerformedService, error)
	Amend(ctx context.Context, id string, input servicedto.UpdatePerformedServiceInput) (*domain.PerformedService, error)
	Cancel(ctx context.Context, id string) (*domain.PerformedService, error)
	Delete(ctx context.Context, id string) error
	Pay(ctx context.Context, id string) (*domain.PerformedService, error)

	GetByID(ctx context.Context, id string) (*domain.PerformedService, error)
	List(ctx context.Context, input servicedto.ListPerformedServicesInput) (*servicedto.PerformedServicePage, error)
}

type DefaultPerformedServiceUsecase struct {
	ServiceRepo     domain.PerformedServiceRepository
	EmployeeRepo    domain.EmployeeRepository
	ServiceTypeRepo domain.ServiceTypeRepository
	PaymentRepo     domain.CommissionPaymentRepository
	Resolver        usecase.RateResolver
	TxManager       domain.TxManager
	Publisher       *publisher.SettlementPublisher
	Metrics         *metrics.CommissionMetrics
}

func NewDefaultPerformedServiceUsecase(
	serviceRepo domain.PerformedServiceRepository,
	employeeRepo domain.EmployeeRepository,
	serviceTypeRepo domain.ServiceTypeRepository,
	paymentRepo domain.CommissionPaymentRepository,
	resolver usecase.RateResolver,
	txManager domain.TxManager,
	settlementPublisher *publisher.SettlementPublisher,
	commissionMetrics *metrics.CommissionMetrics) *DefaultPerformedServiceUsecase {

	return &DefaultPerformedServiceUsecase{
		ServiceRepo:     serviceRepo,
		EmployeeRepo:    employeeRepo,
		ServiceTypeRepo: serviceTypeRepo,
		PaymentRepo:     paymentRepo,
		Resolver:        resolver,
		TxManager:       txManager,
		Publisher:       settlementPublisher,
		Metrics:         commissionMetrics,
	}
}

// dayOf truncates an instant to day granularity in UTC, the precision
// service dates are stored with.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func validateServiceDate(date time.Time) (time.Time, error) {
	day := dayOf(date)
	if day.After(dayOf(time.Now())) {
		return time.Time{}, domain.ErrServiceDateInFuture
	}
	return day, nil
}
