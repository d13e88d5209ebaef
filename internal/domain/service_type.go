package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType is a catalog entry. BasePrice is informational: the charged
// price is set per performed service.
type ServiceType struct {
	ID        string
	Name      string
	BasePrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ServiceTypeRepository interface {
	Create(ctx context.Context, serviceType *ServiceType) error
	Update(ctx context.Context, serviceType *ServiceType) error
	GetByID(ctx context.Context, id string) (*ServiceType, error)
	GetByName(ctx context.Context, name string) (*ServiceType, error)
	List(ctx context.Context) ([]*ServiceType, error)
	Delete(ctx context.Context, id string) error
}
