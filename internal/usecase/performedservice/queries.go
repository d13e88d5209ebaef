package performedservice

import (
	"context"

	"github.com/comissio/commission-service/internal/domain"
	servicedto "github.com/comissio/commission-service/internal/usecase/dto/service"
)

func (uc *DefaultPerformedServiceUsecase) GetByID(ctx context.Context, id string) (*domain.PerformedService, error) {
	return uc.ServiceRepo.GetByID(ctx, id)
}

func (uc *DefaultPerformedServiceUsecase) List(ctx context.Context, input servicedto.ListPerformedServicesInput) (*servicedto.PerformedServicePage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := domain.PerformedServiceFilter{
		EmployeeID: input.EmployeeID,
		Status:     domain.ServiceStatus(input.Status),
		DateFrom:   input.DateFrom,
		DateTo:     input.DateTo,
	}
	services, total, err := uc.ServiceRepo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}
	return &servicedto.PerformedServicePage{
		Services: services,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}
