package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/comissio/commission-service/internal/domain"
	"github.com/comissio/commission-service/internal/usecase"
	catalogdto "github.com/comissio/commission-service/internal/usecase/dto/catalog"
)

type ServiceTypeHandler struct {
	usecase usecase.ServiceTypeUsecase
}

func NewServiceTypeHandler(uc usecase.ServiceTypeUsecase) *ServiceTypeHandler {
	return &ServiceTypeHandler{usecase: uc}
}

type serviceTypeRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=255"`
	BasePrice string `json:"basePrice" validate:"required"`
}

type serviceTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BasePrice string    `json:"basePrice"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func renderServiceType(serviceType *domain.ServiceType) serviceTypeResponse {
	return serviceTypeResponse{
		ID:        serviceType.ID,
		Name:      serviceType.Name,
		BasePrice: serviceType.BasePrice.StringFixed(2),
		CreatedAt: serviceType.CreatedAt,
		UpdatedAt: serviceType.UpdatedAt,
	}
}

func (h *ServiceTypeHandler) bindInput(c echo.Context) (catalogdto.ServiceTypeInput, error) {
	var req serviceTypeRequest
	if err := c.Bind(&req); err != nil {
		return catalogdto.ServiceTypeInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return catalogdto.ServiceTypeInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	basePrice, err := decimal.NewFromString(req.BasePrice)
	if err != nil || basePrice.IsNegative() {
		return catalogdto.ServiceTypeInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid base price")
	}
	return catalogdto.ServiceTypeInput{Name: req.Name, BasePrice: basePrice}, nil
}

func (h *ServiceTypeHandler) Create(c echo.Context) error {
	input, err := h.bindInput(c)
	if err != nil {
		return err
	}
	serviceType, err := h.usecase.Create(c.Request().Context(), input)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, renderServiceType(serviceType))
}

func (h *ServiceTypeHandler) Update(c echo.Context) error {
	input, err := h.bindInput(c)
	if err != nil {
		return err
	}
	serviceType, err := h.usecase.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, renderServiceType(serviceType))
}

func (h *ServiceTypeHandler) GetByID(c echo.Context) error {
	serviceType, err := h.usecase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, renderServiceType(serviceType))
}

func (h *ServiceTypeHandler) List(c echo.Context) error {
	serviceTypes, err := h.usecase.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	items := make([]serviceTypeResponse, 0, len(serviceTypes))
	for _, serviceType := range serviceTypes {
		items = append(items, renderServiceType(serviceType))
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ServiceTypeHandler) Delete(c echo.Context) error {
	if err := h.usecase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
