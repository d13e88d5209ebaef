package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionOverrideModel struct {
	ID            string          `gorm:"primaryKey;type:uuid"`
	EmployeeID    string          `gorm:"type:uuid;not null;uniqueIndex:idx_override_pair;index"`
	ServiceTypeID string          `gorm:"type:uuid;not null;uniqueIndex:idx_override_pair;index"`
	Percentage    decimal.Decimal `gorm:"type:numeric(7,4);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (CommissionOverrideModel) TableName() string {
	return "commission_overrides"
}

type CommissionDefaultModel struct {
	ID            string          `gorm:"primaryKey;type:uuid"`
	ServiceTypeID string          `gorm:"type:uuid;not null;uniqueIndex"`
	Percentage    decimal.Decimal `gorm:"type:numeric(7,4);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (CommissionDefaultModel) TableName() string {
	return "commission_defaults"
}
