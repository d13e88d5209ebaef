package mappers

import (
	"github.com/comissio/commission-service/internal/domain"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/models"
)

func ToGORMPerformedService(service *domain.PerformedService) *models.PerformedServiceModel {
	return &models.PerformedServiceModel{
		ID:               service.ID,
		EmployeeID:       service.EmployeeID,
		ServiceTypeID:    service.ServiceTypeID,
		Price:            service.Price,
		CommissionAmount: service.CommissionAmount,
		ServiceDate:      service.ServiceDate,
		Status:           string(service.Status),
		CreatedAt:        service.CreatedAt,
		UpdatedAt:        service.UpdatedAt,
	}
}

func ToDomainPerformedService(model *models.PerformedServiceModel) *domain.PerformedService {
	return &domain.PerformedService{
		ID:               model.ID,
		EmployeeID:       model.EmployeeID,
		ServiceTypeID:    model.ServiceTypeID,
		Price:            model.Price,
		CommissionAmount: model.CommissionAmount,
		ServiceDate:      model.ServiceDate,
		Status:           domain.ServiceStatus(model.Status),
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMPayment(payment *domain.CommissionPayment) *models.CommissionPaymentModel {
	return &models.CommissionPaymentModel{
		ID:                 payment.ID,
		EmployeeID:         payment.EmployeeID,
		PerformedServiceID: payment.PerformedServiceID,
		AmountPaid:         payment.AmountPaid,
		Status:             string(payment.Status),
		PaymentDate:        payment.PaymentDate,
		CreatedAt:          payment.CreatedAt,
		UpdatedAt:          payment.UpdatedAt,
	}
}

func ToDomainPayment(model *models.CommissionPaymentModel) *domain.CommissionPayment {
	return &domain.CommissionPayment{
		ID:                 model.ID,
		EmployeeID:         model.EmployeeID,
		PerformedServiceID: model.PerformedServiceID,
		AmountPaid:         model.AmountPaid,
		Status:             domain.PaymentStatus(model.Status),
		PaymentDate:        model.PaymentDate,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}
