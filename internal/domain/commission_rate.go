package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CommissionOverride pins a percentage to one (employee, service type) pair.
// At most one override exists per pair.
type CommissionOverride struct {
	ID            string
	EmployeeID    string
	ServiceTypeID string
	Percentage    decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CommissionDefault is the service-type-wide percentage used when no
// override exists. At most one default exists per service type.
type CommissionDefault struct {
	ID            string
	ServiceTypeID string
	Percentage    decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type RateKind string

const (
	RateOverride RateKind = "OVERRIDE"
	RateDefault  RateKind = "DEFAULT"
)

// RateSource is the outcome of rate resolution: which tier supplied the
// percentage that applies to a pair.
type RateSource struct {
	Kind       RateKind
	Percentage decimal.Decimal
}

type CommissionOverrideRepository interface {
	Create(ctx context.Context, override *CommissionOverride) error
	Update(ctx context.Context, override *CommissionOverride) error
	GetByID(ctx context.Context, id string) (*CommissionOverride, error)
	GetByEmployeeAndServiceType(ctx context.Context, employeeID, serviceTypeID string) (*CommissionOverride, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*CommissionOverride, error)
	ListByServiceType(ctx context.Context, serviceTypeID string) ([]*CommissionOverride, error)
	List(ctx context.Context) ([]*CommissionOverride, error)
	Delete(ctx context.Context, id string) error
}

type CommissionDefaultRepository interface {
	Create(ctx context.Context, def *CommissionDefault) error
	Update(ctx context.Context, def *CommissionDefault) error
	GetByID(ctx context.Context, id string) (*CommissionDefault, error)
	GetByServiceType(ctx context.Context, serviceTypeID string) (*CommissionDefault, error)
	List(ctx context.Context) ([]*CommissionDefault, error)
	Delete(ctx context.Context, id string) error
}
