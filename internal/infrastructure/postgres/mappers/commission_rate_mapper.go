package mappers

import (
	"github.com/comissio/commission-service/internal/domain"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/models"
)

func ToGORMOverride(override *domain.CommissionOverride) *models.CommissionOverrideModel {
	return &models.CommissionOverrideModel{
		ID:            override.ID,
		EmployeeID:    override.EmployeeID,
		ServiceTypeID: override.ServiceTypeID,
		Percentage:    override.Percentage,
		CreatedAt:     override.CreatedAt,
		UpdatedAt:     override.UpdatedAt,
	}
}

func ToDomainOverride(model *models.CommissionOverrideModel) *domain.CommissionOverride {
	return &domain.CommissionOverride{
		ID:            model.ID,
		EmployeeID:    model.EmployeeID,
		ServiceTypeID: model.ServiceTypeID,
		Percentage:    model.Percentage,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMDefault(def *domain.CommissionDefault) *models.CommissionDefaultModel {
	return &models.CommissionDefaultModel{
		ID:            def.ID,
		ServiceTypeID: def.ServiceTypeID,
		Percentage:    def.Percentage,
		CreatedAt:     def.CreatedAt,
		UpdatedAt:     def.UpdatedAt,
	}
}

func ToDomainDefault(model *models.CommissionDefaultModel) *domain.CommissionDefault {
	return &domain.CommissionDefault{
		ID:            model.ID,
		ServiceTypeID: model.ServiceTypeID,
		Percentage:    model.Percentage,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
