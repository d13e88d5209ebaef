package performedservice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comissio/commission-service/internal/domain"
	servicedto "github.com/comissio/commission-service/internal/usecase/dto/service"
)

type fakeServiceRepo struct {
	services map[string]*domain.PerformedService
	locked   map[string]bool

	// onLockedRead runs after GetByIDForUpdate takes the lock, standing in
	// for work another connection attempts while the row is held.
	onLockedRead func(id string)
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{
		services: make(map[string]*domain.PerformedService),
		locked:   make(map[string]bool),
	}
}

func (f *fakeServiceRepo) Create(ctx context.Context, service *domain.PerformedService) error {
	stored := *service
	f.services[service.ID] = &stored
	return nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id string) (*domain.PerformedService, error) {
	service, ok := f.services[id]
	if !ok {
		return nil, domain.ErrPerformedServiceNotFound
	}
	copied := *service
	return &copied, nil
}

func (f *fakeServiceRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.PerformedService, error) {
	if _, ok := f.services[id]; ok {
		f.locked[id] = true
		if f.onLockedRead != nil {
			hook := f.onLockedRead
			f.onLockedRead = nil
			hook(id)
		}
	}
	return f.GetByID(ctx, id)
}

func (f *fakeServiceRepo) List(ctx context.Context, filter domain.PerformedServiceFilter, page, limit int) ([]*domain.PerformedService, int64, error) {
	var out []*domain.PerformedService
	for _, service := range f.services {
		if filter.EmployeeID != "" && service.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && service.Status != filter.Status {
			continue
		}
		copied := *service
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (f *fakeServiceRepo) UpdatePending(ctx context.Context, service *domain.PerformedService) error {
	stored, ok := f.services[service.ID]
	if !ok || stored.Status != domain.StatusCommissionPending {
		return domain.ErrInvalidStateTransition
	}
	// A locked row makes the writer wait; by the time the lock clears here
	// the holder has settled the record and the status guard misses.
	if f.locked[service.ID] {
		return domain.ErrInvalidStateTransition
	}
	copied := *service
	f.services[service.ID] = &copied
	return nil
}

func (f *fakeServiceRepo) TransitionStatus(ctx context.Context, id string, fromStatus, toStatus domain.ServiceStatus, zeroCommission bool) error {
	stored, ok := f.services[id]
	if !ok || stored.Status != fromStatus {
		return domain.ErrInvalidStateTransition
	}
	stored.Status = toStatus
	if zeroCommission {
		stored.CommissionAmount = decimal.Zero
	}
	return nil
}

func (f *fakeServiceRepo) ListPendingForSettlement(ctx context.Context, employeeID string, upToServiceDate *time.Time) ([]*domain.PerformedService, error) {
	var out []*domain.PerformedService
	for _, service := range f.services {
		if service.EmployeeID != employeeID || service.Status != domain.StatusCommissionPending {
			continue
		}
		if upToServiceDate != nil && service.ServiceDate.After(*upToServiceDate) {
			continue
		}
		copied := *service
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeServiceRepo) DeletePending(ctx context.Context, id string) error {
	stored, ok := f.services[id]
	if !ok || stored.Status != domain.StatusCommissionPending {
		return domain.ErrInvalidStateTransition
	}
	delete(f.services, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]*domain.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e *domain.Employee) error { return nil }
func (f *fakeEmployeeRepo) Update(ctx context.Context, e *domain.Employee) error { return nil }
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	employee, ok := f.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return employee, nil
}
func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	return nil, domain.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	return false, nil
}
func (f *fakeEmployeeRepo) List(ctx context.Context) ([]*domain.Employee, error) { return nil, nil }

type fakeServiceTypeRepo struct {
	serviceTypes map[string]*domain.ServiceType
}

func (f *fakeServiceTypeRepo) Create(ctx context.Context, s *domain.ServiceType) error { return nil }
func (f *fakeServiceTypeRepo) Update(ctx context.Context, s *domain.ServiceType) error { return nil }
func (f *fakeServiceTypeRepo) GetByID(ctx context.Context, id string) (*domain.ServiceType, error) {
	serviceType, ok := f.serviceTypes[id]
	if !ok {
		return nil, domain.ErrServiceTypeNotFound
	}
	return serviceType, nil
}
func (f *fakeServiceTypeRepo) GetByName(ctx context.Context, name string) (*domain.ServiceType, error) {
	return nil, domain.ErrServiceTypeNotFound
}
func (f *fakeServiceTypeRepo) List(ctx context.Context) ([]*domain.ServiceType, error) {
	return nil, nil
}
func (f *fakeServiceTypeRepo) Delete(ctx context.Context, id string) error { return nil }

type fakePaymentRepo struct {
	payments []*domain.CommissionPayment
	err      error
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *domain.CommissionPayment) error {
	if f.err != nil {
		return f.err
	}
	copied := *payment
	f.payments = append(f.payments, &copied)
	return nil
}
func (f *fakePaymentRepo) GetByID(ctx context.Context, id string) (*domain.CommissionPayment, error) {
	return nil, domain.ErrPaymentNotFound
}
func (f *fakePaymentRepo) List(ctx context.Context, filter domain.PaymentFilter, page, limit int) ([]*domain.CommissionPayment, int64, error) {
	return f.payments, int64(len(f.payments)), nil
}

type fakeResolver struct {
	source domain.RateSource
	err    error
	calls  int
}

func (f *fakeResolver) Resolve(ctx context.Context, employeeID, serviceTypeID string) (domain.RateSource, error) {
	f.calls++
	if f.err != nil {
		return domain.RateSource{}, f.err
	}
	return f.source, nil
}

// fakeTxManager runs the unit of work inline and drops row locks when it
// ends. The fakes mutate shared maps, so rollback is asserted through
// returned errors rather than state.
type fakeTxManager struct {
	repo *fakeServiceRepo
}

func (m fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if m.repo != nil {
		m.repo.locked = make(map[string]bool)
	}
	return err
}

func yesterday() time.Time {
	return time.Now().UTC().AddDate(0, 0, -1)
}

func newTestUsecase(resolver *fakeResolver) (*DefaultPerformedServiceUsecase, *fakeServiceRepo, *fakePaymentRepo) {
	serviceRepo := newFakeServiceRepo()
	paymentRepo := &fakePaymentRepo{}
	uc := NewDefaultPerformedServiceUsecase(
		serviceRepo,
		&fakeEmployeeRepo{employees: map[string]*domain.Employee{
			"emp-1": {ID: "emp-1", Name: "Dana", Status: domain.EmployeeActive},
		}},
		&fakeServiceTypeRepo{serviceTypes: map[string]*domain.ServiceType{
			"type-1": {ID: "type-1", Name: "Haircut"},
		}},
		paymentRepo,
		resolver,
		fakeTxManager{repo: serviceRepo},
		nil,
		nil,
	)
	return uc, serviceRepo, paymentRepo
}

func TestCreateComputesCommission(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{
		Kind: domain.RateDefault, Percentage: decimal.NewFromInt(10),
	}}
	uc, repo, _ := newTestUsecase(resolver)

	service, err := uc.Create(context.Background(), servicedto.CreatePerformedServiceInput{
		EmployeeID:    "emp-1",
		ServiceTypeID: "type-1",
		Price:         decimal.RequireFromString("200.00"),
		ServiceDate:   yesterday(),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCommissionPending, service.Status)
	assert.Equal(t, "20.00", service.CommissionAmount.StringFixed(2))

	stored, err := repo.GetByID(context.Background(), service.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCommissionPending, stored.Status)
}

func TestCreateRejectsUnresolvableRate(t *testing.T) {
	resolver := &fakeResolver{err: domain.ErrCommissionRuleNotFound}
	uc, repo, _ := newTestUsecase(resolver)

	_, err := uc.Create(context.Background(), servicedto.CreatePerformedServiceInput{
		EmployeeID:    "emp-1",
		ServiceTypeID: "type-1",
		Price:         decimal.NewFromInt(100),
		ServiceDate:   yesterday(),
	})
	assert.ErrorIs(t, err, domain.ErrCommissionRuleNotFound)
	assert.Empty(t, repo.services)
}

func TestCreateRejectsFutureDate(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{Percentage: decimal.NewFromInt(10)}}
	uc, _, _ := newTestUsecase(resolver)

	_, err := uc.Create(context.Background(), servicedto.CreatePerformedServiceInput{
		EmployeeID:    "emp-1",
		ServiceTypeID: "type-1",
		Price:         decimal.NewFromInt(100),
		ServiceDate:   time.Now().UTC().AddDate(0, 0, 2),
	})
	assert.ErrorIs(t, err, domain.ErrServiceDateInFuture)
}

func TestCreateRejectsUnknownEmployee(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{Percentage: decimal.NewFromInt(10)}}
	uc, _, _ := newTestUsecase(resolver)

	_, err := uc.Create(context.Background(), servicedto.CreatePerformedServiceInput{
		EmployeeID:    "emp-unknown",
		ServiceTypeID: "type-1",
		Price:         decimal.NewFromInt(100),
		ServiceDate:   yesterday(),
	})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func createPending(t *testing.T, uc *DefaultPerformedServiceUsecase, price string) *domain.PerformedService {
	t.Helper()
	service, err := uc.Create(context.Background(), servicedto.CreatePerformedServiceInput{
		EmployeeID:    "emp-1",
		ServiceTypeID: "type-1",
		Price:         decimal.RequireFromString(price),
		ServiceDate:   yesterday(),
	})
	require.NoError(t, err)
	return service
}

func TestAmendPriceRecomputesWithCurrentRate(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{Percentage: decimal.NewFromInt(10)}}
	uc, _, _ := newTestUsecase(resolver)
	service := createPending(t, uc, "200.00")

	// The rule changed after creation; the amendment must use the new one.
	resolver.source = domain.RateSource{Percentage: decimal.NewFromInt(20)}

	newPrice := decimal.RequireFromString("300.00")
	amended, err := uc.Amend(context.Background(), service.ID, servicedto.UpdatePerformedServiceInput{
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "60.00", amended.CommissionAmount.StringFixed(2))
}

func TestAmendSamePriceSkipsRecomputation(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{Percentage: decimal.NewFromInt(10)}}
	uc, _, _ := newTestUsecase(resolver)
	service := createPending(t, uc, "200.00")
	callsAfterCreate := resolver.calls

	samePrice := decimal.RequireFromString("200.00")
	amended, err := uc.Amend(context.Background(), service.ID, servicedto.UpdatePerformedServiceInput{
		Price: &samePrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "20.00", amended.CommissionAmount.StringFixed(2))
	assert.Equal(t, callsAfterCreate, resolver.calls)
}

func TestAmendDateOnlyKeepsCommission(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{Percentage: decimal.NewFromInt(10)}}
	uc, _, _ := newTestUsecase(resolver)
	service := createPending(t, uc, "200.00")
	callsAfterCreate := resolver.calls

	newDate := time.Now().UTC().AddDate(0, 0, -3)
	amended, err := uc.Amend(context.Background(), service.ID, servicedto.UpdatePerformedServiceInput{
		ServiceDate: &newDate,
	})
	require.NoError(t, err)
	assert.Equal(t, "20.00", amended.CommissionAmount.StringFixed(2))
	assert.Equal(t, callsAfterCreate, resolver.calls)
}

func TestAmendTerminalServiceFails(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{Percentage: decimal.NewFromInt(10)}}
	uc, _, _ := newTestUsecase(resolver)
	service := createPending(t, uc, "200.00")

	_, err := uc.Cancel(context.Background(), service.ID)
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("300.00")
	_, err = uc.Amend(context.Background(), service.ID, servicedto.UpdatePerformedServiceInput{
		Price: &newPrice,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestCancelZeroesCommission(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{Percentage: decimal.NewFromInt(10)}}
	uc, repo, _ := newTestUsecase(resolver)
	service := createPending(t, uc, "200.00")

	cancelled, err := uc.Cancel(context.Background(), service.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.True(t, cancelled.CommissionAmount.IsZero())

	stored, err := repo.GetByID(context.Background(), service.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	assert.True(t, stored.CommissionAmount.IsZero())
}

func TestCancelPaidServiceFails(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{Percentage: decimal.NewFromInt(10)}}
	uc, _, _ := newTestUsecase(resolver)
	service := createPending(t, uc, "200.00")

	_, err := uc.Pay(context.Background(), service.ID)
	require.NoError(t, err)

	_, err = uc.Cancel(context.Background(), service.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestPayCreatesPaymentRecord(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{Percentage: decimal.NewFromInt(10)}}
	uc, repo, paymentRepo := newTestUsecase(resolver)
	service := createPending(t, uc, "200.00")

	paid, err := uc.Pay(context.Background(), service.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCommissionPaid, paid.Status)

	require.Len(t, paymentRepo.payments, 1)
	payment := paymentRepo.payments[0]
	assert.Equal(t, service.ID, payment.PerformedServiceID)
	assert.Equal(t, "emp-1", payment.EmployeeID)
	assert.Equal(t, "20.00", payment.AmountPaid.StringFixed(2))
	assert.Equal(t, domain.PaymentPaid, payment.Status)

	stored, err := repo.GetByID(context.Background(), service.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCommissionPaid, stored.Status)
	assert.Equal(t, "20.00", stored.CommissionAmount.StringFixed(2))
}

func TestPayTwiceFails(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{Percentage: decimal.NewFromInt(10)}}
	uc, _, paymentRepo := newTestUsecase(resolver)
	service := createPending(t, uc, "200.00")

	_, err := uc.Pay(context.Background(), service.ID)
	require.NoError(t, err)

	_, err = uc.Pay(context.Background(), service.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	assert.Len(t, paymentRepo.payments, 1)
}

func TestPayWinsOverConcurrentAmend(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{Percentage: decimal.NewFromInt(10)}}
	uc, repo, paymentRepo := newTestUsecase(resolver)
	service := createPending(t, uc, "200.00")

	var amendErr error
	repo.onLockedRead = func(id string) {
		newPrice := decimal.RequireFromString("300.00")
		_, amendErr = uc.Amend(context.Background(), id, servicedto.UpdatePerformedServiceInput{
			Price: &newPrice,
		})
	}

	paid, err := uc.Pay(context.Background(), service.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCommissionPaid, paid.Status)
	assert.ErrorIs(t, amendErr, domain.ErrInvalidStateTransition)

	require.Len(t, paymentRepo.payments, 1)
	assert.Equal(t, "20.00", paymentRepo.payments[0].AmountPaid.StringFixed(2))

	stored, err := repo.GetByID(context.Background(), service.ID)
	require.NoError(t, err)
	assert.Equal(t, "20.00", stored.CommissionAmount.StringFixed(2))
}

func TestPayUsesAmountAtSettlementTime(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{Percentage: decimal.NewFromInt(10)}}
	uc, repo, paymentRepo := newTestUsecase(resolver)
	service := createPending(t, uc, "200.00")

	// An amend that commits before the lock is granted is simply the state
	// pay reads; the payment must carry the post-amend amount.
	resolver.source = domain.RateSource{Percentage: decimal.NewFromInt(20)}
	newPrice := decimal.RequireFromString("300.00")
	_, err := uc.Amend(context.Background(), service.ID, servicedto.UpdatePerformedServiceInput{
		Price: &newPrice,
	})
	require.NoError(t, err)

	_, err = uc.Pay(context.Background(), service.ID)
	require.NoError(t, err)

	require.Len(t, paymentRepo.payments, 1)
	assert.Equal(t, "60.00", paymentRepo.payments[0].AmountPaid.StringFixed(2))

	stored, err := repo.GetByID(context.Background(), service.ID)
	require.NoError(t, err)
	assert.Equal(t, "60.00", stored.CommissionAmount.StringFixed(2))
}

func TestDeletePendingService(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{Percentage: decimal.NewFromInt(10)}}
	uc, repo, _ := newTestUsecase(resolver)
	service := createPending(t, uc, "200.00")

	require.NoError(t, uc.Delete(context.Background(), service.ID))

	_, err := repo.GetByID(context.Background(), service.ID)
	assert.ErrorIs(t, err, domain.ErrPerformedServiceNotFound)
}

func TestDeleteTerminalServiceFails(t *testing.T) {
	resolver := &fakeResolver{source: domain.RateSource{Percentage: decimal.NewFromInt(10)}}
	uc, _, _ := newTestUsecase(resolver)
	service := createPending(t, uc, "200.00")

	_, err := uc.Pay(context.Background(), service.ID)
	require.NoError(t, err)

	err = uc.Delete(context.Background(), service.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}
