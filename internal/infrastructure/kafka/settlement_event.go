package publisher

// PaymentEvent is emitted after a single commission payment commits.
type PaymentEvent struct {
	PaymentID          string `json:"payment_id"`
	EmployeeID         string `json:"employee_id"`
	PerformedServiceID string `json:"performed_service_id"`
	AmountPaid         string `json:"amount_paid"`
	PaidAt             string `json:"paid_at"`
}

// BatchSettledEvent is emitted after a batch settlement commits.
type BatchSettledEvent struct {
	Reference            string   `json:"reference"`
	EmployeeID           string   `json:"employee_id"`
	CommissionsPaidCount int      `json:"commissions_paid_count"`
	TotalPaid            string   `json:"total_paid"`
	ProcessedAt          string   `json:"processed_at"`
	PaidServiceIDs       []string `json:"paid_service_ids"`
}
