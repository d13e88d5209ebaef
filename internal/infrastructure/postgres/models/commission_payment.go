package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionPaymentModel struct {
	ID                 string          `gorm:"primaryKey;type:uuid"`
	EmployeeID         string          `gorm:"type:uuid;not null;index"`
	PerformedServiceID string          `gorm:"type:uuid;not null;index"`
	AmountPaid         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status             string          `gorm:"not null"`
	PaymentDate        time.Time       `gorm:"not null;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (CommissionPaymentModel) TableName() string {
	return "commission_payments"
}
