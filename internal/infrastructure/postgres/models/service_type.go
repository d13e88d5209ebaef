package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ServiceTypeModel struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	Name      string          `gorm:"uniqueIndex;not null"`
	BasePrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ServiceTypeModel) TableName() string {
	return "service_types"
}
