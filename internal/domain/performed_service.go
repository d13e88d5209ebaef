package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ServiceStatus string

const (
	StatusCommissionPending ServiceStatus = "COMMISSION_PENDING"
	StatusCommissionPaid    ServiceStatus = "COMMISSION_PAID"
	StatusCancelled         ServiceStatus = "CANCELLED"
)

// Terminal reports whether no further transition may leave the status.
func (s ServiceStatus) Terminal() bool {
	return s == StatusCommissionPaid || s == StatusCancelled
}

// PerformedService records one instance of an employee delivering a priced
// service. CommissionAmount always reflects the price and the percentage in
// effect at the last (re)computation; it is zeroed on cancellation.
type PerformedService struct {
	ID               string
	EmployeeID       string
	ServiceTypeID    string
	Price            decimal.Decimal
	CommissionAmount decimal.Decimal
	ServiceDate      time.Time
	Status           ServiceStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PerformedServiceFilter narrows listing. Zero values mean "no constraint".
type PerformedServiceFilter struct {
	EmployeeID string
	Status     ServiceStatus
	DateFrom   time.Time
	DateTo     time.Time
}

type PerformedServiceRepository interface {
	Create(ctx context.Context, service *PerformedService) error
	GetByID(ctx context.Context, id string) (*PerformedService, error)

	// GetByIDForUpdate reads the record under a row lock held until the
	// surrounding transaction ends, so the returned amount cannot be
	// amended out from under the caller.
	GetByIDForUpdate(ctx context.Context, id string) (*PerformedService, error)

	List(ctx context.Context, filter PerformedServiceFilter, page, limit int) ([]*PerformedService, int64, error)

	// UpdatePending persists price/date/commission changes guarded by the
	// persisted status column: zero rows affected means the record left
	// COMMISSION_PENDING since it was read.
	UpdatePending(ctx context.Context, service *PerformedService) error

	// TransitionStatus flips status only when the stored status still equals
	// fromStatus, zeroing the commission when zeroCommission is set. Returns
	// ErrInvalidStateTransition when the guard matches no row.
	TransitionStatus(ctx context.Context, id string, fromStatus, toStatus ServiceStatus, zeroCommission bool) error

	// ListPendingForSettlement selects every COMMISSION_PENDING service of
	// the employee, optionally bounded by service date. The selected rows
	// are locked until the surrounding transaction ends.
	ListPendingForSettlement(ctx context.Context, employeeID string, upToServiceDate *time.Time) ([]*PerformedService, error)

	DeletePending(ctx context.Context, id string) error
}

type TxManager interface {
	// Do runs fn inside one unit of work. Every repository call made with
	// the supplied context joins the same transaction; any error rolls the
	// whole unit back.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
