package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/comissio/commission-service/internal/domain"
	catalogdto "github.com/comissio/commission-service/internal/usecase/dto/catalog"
)

// CommissionRateUsecase manages both tiers of the rate catalog: employee
// overrides and service-type defaults.
type CommissionRateUsecase interface {
	CreateOverride(ctx context.Context, input catalogdto.OverrideInput) (*domain.CommissionOverride, error)
	UpdateOverride(ctx context.Context, id string, input catalogdto.OverrideInput) (*domain.CommissionOverride, error)
	GetOverrideByID(ctx context.Context, id string) (*domain.CommissionOverride, error)
	ListOverridesByEmployee(ctx context.Context, employeeID string) ([]*domain.CommissionOverride, error)
	ListOverridesByServiceType(ctx context.Context, serviceTypeID string) ([]*domain.CommissionOverride, error)
	ListOverrides(ctx context.Context) ([]*domain.CommissionOverride, error)
	DeleteOverride(ctx context.Context, id string) error

	UpsertDefault(ctx context.Context, input catalogdto.DefaultInput) (*domain.CommissionDefault, error)
	UpdateDefault(ctx context.Context, id string, input catalogdto.DefaultInput) (*domain.CommissionDefault, error)
	GetDefaultByID(ctx context.Context, id string) (*domain.CommissionDefault, error)
	GetDefaultByServiceType(ctx context.Context, serviceTypeID string) (*domain.CommissionDefault, error)
	ListDefaults(ctx context.Context) ([]*domain.CommissionDefault, error)
	DeleteDefault(ctx context.Context, id string) error
}

type DefaultCommissionRateUsecase struct {
	overrideRepo    domain.CommissionOverrideRepository
	defaultRepo     domain.CommissionDefaultRepository
	employeeRepo    domain.EmployeeRepository
	serviceTypeRepo domain.ServiceTypeRepository
}

func NewDefaultCommissionRateUsecase(
	overrideRepo domain.CommissionOverrideRepository,
	defaultRepo domain.CommissionDefaultRepository,
	employeeRepo domain.EmployeeRepository,
	serviceTypeRepo domain.ServiceTypeRepository) *DefaultCommissionRateUsecase {

	return &DefaultCommissionRateUsecase{
		overrideRepo:    overrideRepo,
		defaultRepo:     defaultRepo,
		employeeRepo:    employeeRepo,
		serviceTypeRepo: serviceTypeRepo,
	}
}

func (uc *DefaultCommissionRateUsecase) CreateOverride(ctx context.Context, input catalogdto.OverrideInput) (*domain.CommissionOverride, error) {
	if input.Percentage.IsNegative() {
		return nil, domain.ErrNegativePercentage
	}
	if err := uc.checkPairRefs(ctx, input.EmployeeID, input.ServiceTypeID); err != nil {
		return nil, err
	}

	_, err := uc.overrideRepo.GetByEmployeeAndServiceType(ctx, input.EmployeeID, input.ServiceTypeID)
	if err == nil {
		return nil, domain.ErrDuplicateOverride
	}
	if !errors.Is(err, domain.ErrRateNotFound) {
		return nil, err
	}

	override := &domain.CommissionOverride{
		ID:            uuid.NewString(),
		EmployeeID:    input.EmployeeID,
		ServiceTypeID: input.ServiceTypeID,
		Percentage:    input.Percentage,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	if err := uc.overrideRepo.Create(ctx, override); err != nil {
		return nil, err
	}
	return override, nil
}

func (uc *DefaultCommissionRateUsecase) UpdateOverride(ctx context.Context, id string, input catalogdto.OverrideInput) (*domain.CommissionOverride, error) {
	if input.Percentage.IsNegative() {
		return nil, domain.ErrNegativePercentage
	}
	override, err := uc.overrideRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkPairRefs(ctx, input.EmployeeID, input.ServiceTypeID); err != nil {
		return nil, err
	}

	// Repointing the override must not collide with another pair's rule.
	existing, err := uc.overrideRepo.GetByEmployeeAndServiceType(ctx, input.EmployeeID, input.ServiceTypeID)
	if err == nil && existing.ID != id {
		return nil, domain.ErrDuplicateOverride
	}
	if err != nil && !errors.Is(err, domain.ErrRateNotFound) {
		return nil, err
	}

	override.EmployeeID = input.EmployeeID
	override.ServiceTypeID = input.ServiceTypeID
	override.Percentage = input.Percentage
	override.UpdatedAt = time.Now().UTC()
	if err := uc.overrideRepo.Update(ctx, override); err != nil {
		return nil, err
	}
	return override, nil
}

func (uc *DefaultCommissionRateUsecase) GetOverrideByID(ctx context.Context, id string) (*domain.CommissionOverride, error) {
	return uc.overrideRepo.GetByID(ctx, id)
}

func (uc *DefaultCommissionRateUsecase) ListOverridesByEmployee(ctx context.Context, employeeID string) ([]*domain.CommissionOverride, error) {
	if _, err := uc.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return uc.overrideRepo.ListByEmployee(ctx, employeeID)
}

func (uc *DefaultCommissionRateUsecase) ListOverridesByServiceType(ctx context.Context, serviceTypeID string) ([]*domain.CommissionOverride, error) {
	if _, err := uc.serviceTypeRepo.GetByID(ctx, serviceTypeID); err != nil {
		return nil, err
	}
	return uc.overrideRepo.ListByServiceType(ctx, serviceTypeID)
}

func (uc *DefaultCommissionRateUsecase) ListOverrides(ctx context.Context) ([]*domain.CommissionOverride, error) {
	return uc.overrideRepo.List(ctx)
}

func (uc *DefaultCommissionRateUsecase) DeleteOverride(ctx context.Context, id string) error {
	if _, err := uc.overrideRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.overrideRepo.Delete(ctx, id)
}

// UpsertDefault creates the service-type default or, when one already
// exists, replaces its percentage.
func (uc *DefaultCommissionRateUsecase) UpsertDefault(ctx context.Context, input catalogdto.DefaultInput) (*domain.CommissionDefault, error) {
	if input.Percentage.IsNegative() {
		return nil, domain.ErrNegativePercentage
	}
	if _, err := uc.serviceTypeRepo.GetByID(ctx, input.ServiceTypeID); err != nil {
		return nil, err
	}

	def, err := uc.defaultRepo.GetByServiceType(ctx, input.ServiceTypeID)
	if err == nil {
		def.Percentage = input.Percentage
		def.UpdatedAt = time.Now().UTC()
		if err := uc.defaultRepo.Update(ctx, def); err != nil {
			return nil, err
		}
		return def, nil
	}
	if !errors.Is(err, domain.ErrRateNotFound) {
		return nil, err
	}

	def = &domain.CommissionDefault{
		ID:            uuid.NewString(),
		ServiceTypeID: input.ServiceTypeID,
		Percentage:    input.Percentage,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	if err := uc.defaultRepo.Create(ctx, def); err != nil {
		return nil, err
	}
	return def, nil
}

func (uc *DefaultCommissionRateUsecase) UpdateDefault(ctx context.Context, id string, input catalogdto.DefaultInput) (*domain.CommissionDefault, error) {
	if input.Percentage.IsNegative() {
		return nil, domain.ErrNegativePercentage
	}
	def, err := uc.defaultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := uc.serviceTypeRepo.GetByID(ctx, input.ServiceTypeID); err != nil {
		return nil, err
	}

	existing, err := uc.defaultRepo.GetByServiceType(ctx, input.ServiceTypeID)
	if err == nil && existing.ID != id {
		return nil, domain.ErrDuplicateDefault
	}
	if err != nil && !errors.Is(err, domain.ErrRateNotFound) {
		return nil, err
	}

	def.ServiceTypeID = input.ServiceTypeID
	def.Percentage = input.Percentage
	def.UpdatedAt = time.Now().UTC()
	if err := uc.defaultRepo.Update(ctx, def); err != nil {
		return nil, err
	}
	return def, nil
}

func (uc *DefaultCommissionRateUsecase) GetDefaultByID(ctx context.Context, id string) (*domain.CommissionDefault, error) {
	return uc.defaultRepo.GetByID(ctx, id)
}

func (uc *DefaultCommissionRateUsecase) GetDefaultByServiceType(ctx context.Context, serviceTypeID string) (*domain.CommissionDefault, error) {
	return uc.defaultRepo.GetByServiceType(ctx, serviceTypeID)
}

func (uc *DefaultCommissionRateUsecase) ListDefaults(ctx context.Context) ([]*domain.CommissionDefault, error) {
	return uc.defaultRepo.List(ctx)
}

func (uc *DefaultCommissionRateUsecase) DeleteDefault(ctx context.Context, id string) error {
	if _, err := uc.defaultRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.defaultRepo.Delete(ctx, id)
}

func (uc *DefaultCommissionRateUsecase) checkPairRefs(ctx context.Context, employeeID, serviceTypeID string) error {
	if _, err := uc.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return err
	}
	if _, err := uc.serviceTypeRepo.GetByID(ctx, serviceTypeID); err != nil {
		return err
	}
	return nil
}
