package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comissio/commission-service/internal/domain"
	"github.com/comissio/commission-service/internal/usecase"
	employeedto "github.com/comissio/commission-service/internal/usecase/dto/employee"
)

type EmployeeHandler struct {
	usecase usecase.EmployeeUsecase
}

func NewEmployeeHandler(uc usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc}
}

type registerEmployeeRequest struct {
	UserID string `json:"userId" validate:"required"`
	Name   string `json:"name" validate:"required,min=1,max=255"`
	Email  string `json:"email" validate:"required,email"`
	Status string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type updateEmployeeRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

type employeeResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func renderEmployee(employee *domain.Employee) employeeResponse {
	return employeeResponse{
		ID:        employee.ID,
		UserID:    employee.UserID,
		Name:      employee.Name,
		Email:     employee.Email,
		Status:    string(employee.Status),
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}
}

func (h *EmployeeHandler) Register(c echo.Context) error {
	var req registerEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.usecase.Register(c.Request().Context(), employeedto.RegisterEmployeeInput{
		UserID: req.UserID,
		Name:   req.Name,
		Email:  req.Email,
		Status: domain.EmployeeStatus(req.Status),
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, renderEmployee(employee))
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.usecase.Update(c.Request().Context(), c.Param("id"), employeedto.UpdateEmployeeInput{
		Status: domain.EmployeeStatus(req.Status),
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, renderEmployee(employee))
}

func (h *EmployeeHandler) GetByID(c echo.Context) error {
	employee, err := h.usecase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, renderEmployee(employee))
}

func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.usecase.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	items := make([]employeeResponse, 0, len(employees))
	for _, employee := range employees {
		items = append(items, renderEmployee(employee))
	}
	return c.JSON(http.StatusOK, items)
}
