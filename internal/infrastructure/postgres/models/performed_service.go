package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PerformedServiceModel struct {
	ID               string          `gorm:"primaryKey;type:uuid"`
	EmployeeID       string          `gorm:"type:uuid;not null;index:idx_performed_employee_status"`
	ServiceTypeID    string          `gorm:"type:uuid;not null;index"`
	Price            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CommissionAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ServiceDate      time.Time       `gorm:"type:date;not null;index"`
	Status           string          `gorm:"not null;index:idx_performed_employee_status"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (PerformedServiceModel) TableName() string {
	return "performed_services"
}
