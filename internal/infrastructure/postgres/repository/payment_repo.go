package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/comissio/commission-service/internal/domain"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/models"
)

type DefaultCommissionPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultCommissionPaymentRepository(db *gorm.DB) *DefaultCommissionPaymentRepository {
	return &DefaultCommissionPaymentRepository{DB: db}
}

func (r *DefaultCommissionPaymentRepository) Create(ctx context.Context, payment *domain.CommissionPayment) error {
	return dbFrom(ctx, r.DB).Create(mappers.ToGORMPayment(payment)).Error
}

func (r *DefaultCommissionPaymentRepository) GetByID(ctx context.Context, id string) (*domain.CommissionPayment, error) {
	var model models.CommissionPaymentModel
	if err := dbFrom(ctx, r.DB).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&model), nil
}

func (r *DefaultCommissionPaymentRepository) List(ctx context.Context, filter domain.PaymentFilter, page, limit int) ([]*domain.CommissionPayment, int64, error) {
	baseQuery := dbFrom(ctx, r.DB).Model(&models.CommissionPaymentModel{})

	if filter.EmployeeID != "" {
		baseQuery = baseQuery.Where("employee_id = ?", filter.EmployeeID)
	}
	if !filter.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("payment_date >= ?", filter.DateFrom)
	}
	if !filter.DateTo.IsZero() {
		baseQuery = baseQuery.Where("payment_date <= ?", filter.DateTo)
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var paymentModels []models.CommissionPaymentModel
	err := baseQuery.
		Order("payment_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&paymentModels).Error
	if err != nil {
		return nil, 0, err
	}

	payments := make([]*domain.CommissionPayment, 0, len(paymentModels))
	for i := range paymentModels {
		payments = append(payments, mappers.ToDomainPayment(&paymentModels[i]))
	}
	return payments, total, nil
}
