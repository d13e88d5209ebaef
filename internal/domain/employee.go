package domain

import (
	"context"
	"time"
)

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "ACTIVE"
	EmployeeInactive EmployeeStatus = "INACTIVE"
)

// Employee references an externally managed identity by UserID and carries
// the display name used on receipts.
type Employee struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Status    EmployeeStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *Employee) error
	Update(ctx context.Context, employee *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByUserID(ctx context.Context, userID string) (*Employee, error)
	ExistsByUserID(ctx context.Context, userID string) (bool, error)
	List(ctx context.Context) ([]*Employee, error)
}
