package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/comissio/commission-service/internal/domain"
	catalogdto "github.com/comissio/commission-service/internal/usecase/dto/catalog"
)

type ServiceTypeUsecase interface {
	Create(ctx context.Context, input catalogdto.ServiceTypeInput) (*domain.ServiceType, error)
	Update(ctx context.Context, id string, input catalogdto.ServiceTypeInput) (*domain.ServiceType, error)
	GetByID(ctx context.Context, id string) (*domain.ServiceType, error)
	List(ctx context.Context) ([]*domain.ServiceType, error)
	Delete(ctx context.Context, id string) error
}

type DefaultServiceTypeUsecase struct {
	serviceTypeRepo domain.ServiceTypeRepository
}

func NewDefaultServiceTypeUsecase(serviceTypeRepo domain.ServiceTypeRepository) *DefaultServiceTypeUsecase {
	return &DefaultServiceTypeUsecase{serviceTypeRepo: serviceTypeRepo}
}

func (uc *DefaultServiceTypeUsecase) Create(ctx context.Context, input catalogdto.ServiceTypeInput) (*domain.ServiceType, error) {
	if err := uc.checkNameFree(ctx, input.Name, ""); err != nil {
		return nil, err
	}

	serviceType := &domain.ServiceType{
		ID:        uuid.NewString(),
		Name:      input.Name,
		BasePrice: input.BasePrice,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := uc.serviceTypeRepo.Create(ctx, serviceType); err != nil {
		return nil, err
	}
	return serviceType, nil
}

func (uc *DefaultServiceTypeUsecase) Update(ctx context.Context, id string, input catalogdto.ServiceTypeInput) (*domain.ServiceType, error) {
	serviceType, err := uc.serviceTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkNameFree(ctx, input.Name, id); err != nil {
		return nil, err
	}

	serviceType.Name = input.Name
	serviceType.BasePrice = input.BasePrice
	serviceType.UpdatedAt = time.Now().UTC()
	if err := uc.serviceTypeRepo.Update(ctx, serviceType); err != nil {
		return nil, err
	}
	return serviceType, nil
}

func (uc *DefaultServiceTypeUsecase) GetByID(ctx context.Context, id string) (*domain.ServiceType, error) {
	return uc.serviceTypeRepo.GetByID(ctx, id)
}

func (uc *DefaultServiceTypeUsecase) List(ctx context.Context) ([]*domain.ServiceType, error) {
	return uc.serviceTypeRepo.List(ctx)
}

func (uc *DefaultServiceTypeUsecase) Delete(ctx context.Context, id string) error {
	if _, err := uc.serviceTypeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.serviceTypeRepo.Delete(ctx, id)
}

func (uc *DefaultServiceTypeUsecase) checkNameFree(ctx context.Context, name, selfID string) error {
	existing, err := uc.serviceTypeRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrServiceTypeNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.ErrDuplicateServiceTypeName
	}
	return nil
}
