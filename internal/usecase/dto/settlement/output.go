package settlementdto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/comissio/commission-service/internal/domain"
)

// BatchReceipt summarizes one settled batch.
type BatchReceipt struct {
	EmployeeID           string
	EmployeeName         string
	Reference            string
	CommissionsPaidCount int
	TotalPaid            decimal.Decimal
	BatchProcessTime     time.Time
	PaidServiceIDs       []string
}

type PaymentPage struct {
	Payments []*domain.CommissionPayment
	Total    int64
	Page     int
	Limit    int
}
