package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const PaymentPaid PaymentStatus = "PAID"

// CommissionPayment is the immutable settlement record: exactly one per
// successful payment event, never updated after creation.
type CommissionPayment struct {
	ID                 string
	EmployeeID         string
	PerformedServiceID string
	AmountPaid         decimal.Decimal
	Status             PaymentStatus
	PaymentDate        time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type PaymentFilter struct {
	EmployeeID string
	DateFrom   time.Time
	DateTo     time.Time
}

type CommissionPaymentRepository interface {
	Create(ctx context.Context, payment *CommissionPayment) error
	GetByID(ctx context.Context, id string) (*CommissionPayment, error)
	List(ctx context.Context, filter PaymentFilter, page, limit int) ([]*CommissionPayment, int64, error)
}
