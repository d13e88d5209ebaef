package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comissio/commission-service/internal/domain"
)

type fakeOverrideRepo struct {
	overrides map[string]*domain.CommissionOverride
	err       error
}

func pairKey(employeeID, serviceTypeID string) string {
	return employeeID + "/" + serviceTypeID
}

func (f *fakeOverrideRepo) Create(ctx context.Context, o *domain.CommissionOverride) error {
	if f.overrides == nil {
		f.overrides = make(map[string]*domain.CommissionOverride)
	}
	f.overrides[pairKey(o.EmployeeID, o.ServiceTypeID)] = o
	return nil
}
func (f *fakeOverrideRepo) Update(ctx context.Context, o *domain.CommissionOverride) error { return nil }
func (f *fakeOverrideRepo) GetByID(ctx context.Context, id string) (*domain.CommissionOverride, error) {
	return nil, domain.ErrRateNotFound
}
func (f *fakeOverrideRepo) GetByEmployeeAndServiceType(ctx context.Context, employeeID, serviceTypeID string) (*domain.CommissionOverride, error) {
	if f.err != nil {
		return nil, f.err
	}
	if override, ok := f.overrides[pairKey(employeeID, serviceTypeID)]; ok {
		return override, nil
	}
	return nil, domain.ErrRateNotFound
}
func (f *fakeOverrideRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*domain.CommissionOverride, error) {
	return nil, nil
}
func (f *fakeOverrideRepo) ListByServiceType(ctx context.Context, serviceTypeID string) ([]*domain.CommissionOverride, error) {
	return nil, nil
}
func (f *fakeOverrideRepo) List(ctx context.Context) ([]*domain.CommissionOverride, error) {
	return nil, nil
}
func (f *fakeOverrideRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeDefaultRepo struct {
	defaults map[string]*domain.CommissionDefault
	err      error
}

func (f *fakeDefaultRepo) Create(ctx context.Context, d *domain.CommissionDefault) error {
	if f.defaults == nil {
		f.defaults = make(map[string]*domain.CommissionDefault)
	}
	f.defaults[d.ServiceTypeID] = d
	return nil
}
func (f *fakeDefaultRepo) Update(ctx context.Context, d *domain.CommissionDefault) error {
	f.defaults[d.ServiceTypeID] = d
	return nil
}
func (f *fakeDefaultRepo) GetByID(ctx context.Context, id string) (*domain.CommissionDefault, error) {
	return nil, domain.ErrRateNotFound
}
func (f *fakeDefaultRepo) GetByServiceType(ctx context.Context, serviceTypeID string) (*domain.CommissionDefault, error) {
	if f.err != nil {
		return nil, f.err
	}
	if def, ok := f.defaults[serviceTypeID]; ok {
		return def, nil
	}
	return nil, domain.ErrRateNotFound
}
func (f *fakeDefaultRepo) List(ctx context.Context) ([]*domain.CommissionDefault, error) {
	return nil, nil
}
func (f *fakeDefaultRepo) Delete(ctx context.Context, id string) error { return nil }

func TestResolveOverrideWinsOverDefault(t *testing.T) {
	overrideRepo := &fakeOverrideRepo{overrides: map[string]*domain.CommissionOverride{
		pairKey("emp-1", "type-1"): {Percentage: decimal.NewFromInt(15)},
	}}
	defaultRepo := &fakeDefaultRepo{defaults: map[string]*domain.CommissionDefault{
		"type-1": {Percentage: decimal.NewFromInt(5)},
	}}
	resolver := NewDefaultRateResolver(overrideRepo, defaultRepo)

	source, err := resolver.Resolve(context.Background(), "emp-1", "type-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RateOverride, source.Kind)
	assert.True(t, source.Percentage.Equal(decimal.NewFromInt(15)))
}

func TestResolveFallsBackToDefault(t *testing.T) {
	overrideRepo := &fakeOverrideRepo{}
	defaultRepo := &fakeDefaultRepo{defaults: map[string]*domain.CommissionDefault{
		"type-1": {Percentage: decimal.NewFromInt(5)},
	}}
	resolver := NewDefaultRateResolver(overrideRepo, defaultRepo)

	source, err := resolver.Resolve(context.Background(), "emp-1", "type-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RateDefault, source.Kind)
	assert.True(t, source.Percentage.Equal(decimal.NewFromInt(5)))
}

func TestResolveNoRuleAtEitherTier(t *testing.T) {
	resolver := NewDefaultRateResolver(&fakeOverrideRepo{}, &fakeDefaultRepo{})

	_, err := resolver.Resolve(context.Background(), "emp-1", "type-1")
	assert.ErrorIs(t, err, domain.ErrCommissionRuleNotFound)
}

func TestResolvePropagatesRepoFailures(t *testing.T) {
	repoErr := errors.New("connection reset")

	resolver := NewDefaultRateResolver(&fakeOverrideRepo{err: repoErr}, &fakeDefaultRepo{})
	_, err := resolver.Resolve(context.Background(), "emp-1", "type-1")
	assert.ErrorIs(t, err, repoErr)

	resolver = NewDefaultRateResolver(&fakeOverrideRepo{}, &fakeDefaultRepo{err: repoErr})
	_, err = resolver.Resolve(context.Background(), "emp-1", "type-1")
	assert.ErrorIs(t, err, repoErr)
}

// An override percentage of zero is a deliberate rule, not an absent one.
func TestResolveZeroPercentOverride(t *testing.T) {
	overrideRepo := &fakeOverrideRepo{overrides: map[string]*domain.CommissionOverride{
		pairKey("emp-1", "type-1"): {Percentage: decimal.Zero},
	}}
	defaultRepo := &fakeDefaultRepo{defaults: map[string]*domain.CommissionDefault{
		"type-1": {Percentage: decimal.NewFromInt(10)},
	}}
	resolver := NewDefaultRateResolver(overrideRepo, defaultRepo)

	source, err := resolver.Resolve(context.Background(), "emp-1", "type-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RateOverride, source.Kind)
	assert.True(t, source.Percentage.IsZero())
}
