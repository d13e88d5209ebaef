package mappers

import (
	"github.com/comissio/commission-service/internal/domain"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/models"
)

func ToGORMServiceType(serviceType *domain.ServiceType) *models.ServiceTypeModel {
	return &models.ServiceTypeModel{
		ID:        serviceType.ID,
		Name:      serviceType.Name,
		BasePrice: serviceType.BasePrice,
		CreatedAt: serviceType.CreatedAt,
		UpdatedAt: serviceType.UpdatedAt,
	}
}

func ToDomainServiceType(model *models.ServiceTypeModel) *domain.ServiceType {
	return &domain.ServiceType{
		ID:        model.ID,
		Name:      model.Name,
		BasePrice: model.BasePrice,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
