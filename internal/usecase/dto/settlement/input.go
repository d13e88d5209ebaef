package settlementdto

import "time"

// SettleBatchInput requests settlement of every pending commission of the
// employee, optionally bounded by service date.
type SettleBatchInput struct {
	EmployeeID      string
	UpToServiceDate *time.Time
}

type ListPaymentsInput struct {
	EmployeeID string
	DateFrom   time.Time
	DateTo     time.Time
	Page       int
	Limit      int
}
