package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/comissio/commission-service/internal/domain"
)

// RateResolver returns the commission percentage in effect for an
// (employee, service type) pair. An employee-specific override always wins
// over the service-type default; when neither tier has a rule the resolution
// is a hard failure, never a silent zero.
type RateResolver interface {
	Resolve(ctx context.Context, employeeID, serviceTypeID string) (domain.RateSource, error)
}

type DefaultRateResolver struct {
	overrideRepo domain.CommissionOverrideRepository
	defaultRepo  domain.CommissionDefaultRepository
}

func NewDefaultRateResolver(
	overrideRepo domain.CommissionOverrideRepository,
	defaultRepo domain.CommissionDefaultRepository) *DefaultRateResolver {

	return &DefaultRateResolver{
		overrideRepo: overrideRepo,
		defaultRepo:  defaultRepo,
	}
}

func (r *DefaultRateResolver) Resolve(ctx context.Context, employeeID, serviceTypeID string) (domain.RateSource, error) {
	override, err := r.overrideRepo.GetByEmployeeAndServiceType(ctx, employeeID, serviceTypeID)
	if err == nil {
		return domain.RateSource{Kind: domain.RateOverride, Percentage: override.Percentage}, nil
	}
	if !errors.Is(err, domain.ErrRateNotFound) {
		return domain.RateSource{}, err
	}

	def, err := r.defaultRepo.GetByServiceType(ctx, serviceTypeID)
	if err == nil {
		return domain.RateSource{Kind: domain.RateDefault, Percentage: def.Percentage}, nil
	}
	if errors.Is(err, domain.ErrRateNotFound) {
		return domain.RateSource{}, fmt.Errorf("%w: employee %s, service type %s",
			domain.ErrCommissionRuleNotFound, employeeID, serviceTypeID)
	}
	return domain.RateSource{}, err
}
