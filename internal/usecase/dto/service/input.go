package servicedto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePerformedServiceInput struct {
	EmployeeID    string
	ServiceTypeID string
	Price         decimal.Decimal
	ServiceDate   time.Time
}

// UpdatePerformedServiceInput carries the amendable fields. Nil means "leave
// unchanged".
type UpdatePerformedServiceInput struct {
	Price       *decimal.Decimal
	ServiceDate *time.Time
}

type ListPerformedServicesInput struct {
	EmployeeID string
	Status     string
	DateFrom   time.Time
	DateTo     time.Time
	Page       int
	Limit      int
}
