package models

import "time"

type EmployeeModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	UserID    string `gorm:"type:uuid;uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	Email     string
	Status    string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EmployeeModel) TableName() string {
	return "employees"
}
