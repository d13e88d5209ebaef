package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/comissio/commission-service/internal/delivery/http/middleware"
	"github.com/comissio/commission-service/internal/usecase/performedservice"
	servicedto "github.com/comissio/commission-service/internal/usecase/dto/service"
)

type PerformedServiceHandler struct {
	usecase performedservice.PerformedServiceUsecase
}

func NewPerformedServiceHandler(uc performedservice.PerformedServiceUsecase) *PerformedServiceHandler {
	return &PerformedServiceHandler{usecase: uc}
}

type createPerformedServiceRequest struct {
	EmployeeID    string `json:"employeeId" validate:"required,uuid4"`
	ServiceTypeID string `json:"serviceTypeId" validate:"required,uuid4"`
	Price         string `json:"price" validate:"required"`
	ServiceDate   string `json:"serviceDate" validate:"required"`
}

func (h *PerformedServiceHandler) Create(c echo.Context) error {
	var req createPerformedServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	serviceDate, err := parseDate(req.ServiceDate)
	if err != nil {
		return err
	}

	service, err := h.usecase.Create(c.Request().Context(), servicedto.CreatePerformedServiceInput{
		EmployeeID:    req.EmployeeID,
		ServiceTypeID: req.ServiceTypeID,
		Price:         price,
		ServiceDate:   serviceDate,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, renderPerformedService(service))
}

type amendPerformedServiceRequest struct {
	Price       *string `json:"price"`
	ServiceDate *string `json:"serviceDate"`
}

func (h *PerformedServiceHandler) Amend(c echo.Context) error {
	var req amendPerformedServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	var input servicedto.UpdatePerformedServiceInput
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid price")
		}
		input.Price = &price
	}
	if req.ServiceDate != nil {
		serviceDate, err := parseDate(*req.ServiceDate)
		if err != nil {
			return err
		}
		input.ServiceDate = &serviceDate
	}

	service, err := h.usecase.Amend(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, renderPerformedService(service))
}

func (h *PerformedServiceHandler) Cancel(c echo.Context) error {
	service, err := h.usecase.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, renderPerformedService(service))
}

func (h *PerformedServiceHandler) Delete(c echo.Context) error {
	if err := h.usecase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PerformedServiceHandler) Pay(c echo.Context) error {
	service, err := h.usecase.Pay(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, renderPerformedService(service))
}

func (h *PerformedServiceHandler) GetByID(c echo.Context) error {
	service, err := h.usecase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	if claims := middleware.ClaimsFrom(c); claims != nil && claims.Role == middleware.RoleEmployee &&
		service.EmployeeID != claims.EmployeeID {
		return echo.NewHTTPError(http.StatusForbidden, "access denied")
	}
	return c.JSON(http.StatusOK, renderPerformedService(service))
}

func (h *PerformedServiceHandler) List(c echo.Context) error {
	input := servicedto.ListPerformedServicesInput{
		EmployeeID: c.QueryParam("employeeId"),
		Status:     c.QueryParam("status"),
		Page:       intQueryParam(c, "page"),
		Limit:      intQueryParam(c, "limit"),
	}

	dateFrom, err := parseOptionalDate(c.QueryParam("dateFrom"))
	if err != nil {
		return err
	}
	dateTo, err := parseOptionalDate(c.QueryParam("dateTo"))
	if err != nil {
		return err
	}
	if dateFrom != nil {
		input.DateFrom = *dateFrom
	}
	if dateTo != nil {
		input.DateTo = *dateTo
	}

	// Employee-role callers only ever see their own records.
	if claims := middleware.ClaimsFrom(c); claims != nil && claims.Role == middleware.RoleEmployee {
		input.EmployeeID = claims.EmployeeID
	}

	page, err := h.usecase.List(c.Request().Context(), input)
	if err != nil {
		return toHTTPError(err)
	}

	items := make([]performedServiceResponse, 0, len(page.Services))
	for _, service := range page.Services {
		items = append(items, renderPerformedService(service))
	}
	return c.JSON(http.StatusOK, pageResponse{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}
