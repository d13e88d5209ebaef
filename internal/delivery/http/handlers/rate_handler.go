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

type RateHandler struct {
	usecase  usecase.CommissionRateUsecase
	resolver usecase.RateResolver
}

func NewRateHandler(uc usecase.CommissionRateUsecase, resolver usecase.RateResolver) *RateHandler {
	return &RateHandler{usecase: uc, resolver: resolver}
}

type overrideRequest struct {
	EmployeeID    string `json:"employeeId" validate:"required,uuid4"`
	ServiceTypeID string `json:"serviceTypeId" validate:"required,uuid4"`
	Percentage    string `json:"percentage" validate:"required"`
}

type defaultRequest struct {
	ServiceTypeID string `json:"serviceTypeId" validate:"required,uuid4"`
	Percentage    string `json:"percentage" validate:"required"`
}

type overrideResponse struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	ServiceTypeID string    `json:"serviceTypeId"`
	Percentage    string    `json:"percentage"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type defaultResponse struct {
	ID            string    `json:"id"`
	ServiceTypeID string    `json:"serviceTypeId"`
	Percentage    string    `json:"percentage"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type resolvedRateResponse struct {
	EmployeeID    string `json:"employeeId"`
	ServiceTypeID string `json:"serviceTypeId"`
	Kind          string `json:"kind"`
	Percentage    string `json:"percentage"`
}

func renderOverride(override *domain.CommissionOverride) overrideResponse {
	return overrideResponse{
		ID:            override.ID,
		EmployeeID:    override.EmployeeID,
		ServiceTypeID: override.ServiceTypeID,
		Percentage:    override.Percentage.String(),
		CreatedAt:     override.CreatedAt,
		UpdatedAt:     override.UpdatedAt,
	}
}

func renderDefault(def *domain.CommissionDefault) defaultResponse {
	return defaultResponse{
		ID:            def.ID,
		ServiceTypeID: def.ServiceTypeID,
		Percentage:    def.Percentage.String(),
		CreatedAt:     def.CreatedAt,
		UpdatedAt:     def.UpdatedAt,
	}
}

func parsePercentage(value string) (decimal.Decimal, error) {
	percentage, err := decimal.NewFromString(value)
	if err != nil || percentage.IsNegative() {
		return decimal.Decimal{}, echo.NewHTTPError(http.StatusBadRequest, "invalid percentage")
	}
	return percentage, nil
}

func (h *RateHandler) bindOverride(c echo.Context) (catalogdto.OverrideInput, error) {
	var req overrideRequest
	if err := c.Bind(&req); err != nil {
		return catalogdto.OverrideInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return catalogdto.OverrideInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	percentage, err := parsePercentage(req.Percentage)
	if err != nil {
		return catalogdto.OverrideInput{}, err
	}
	return catalogdto.OverrideInput{
		EmployeeID:    req.EmployeeID,
		ServiceTypeID: req.ServiceTypeID,
		Percentage:    percentage,
	}, nil
}

func (h *RateHandler) bindDefault(c echo.Context) (catalogdto.DefaultInput, error) {
	var req defaultRequest
	if err := c.Bind(&req); err != nil {
		return catalogdto.DefaultInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return catalogdto.DefaultInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	percentage, err := parsePercentage(req.Percentage)
	if err != nil {
		return catalogdto.DefaultInput{}, err
	}
	return catalogdto.DefaultInput{
		ServiceTypeID: req.ServiceTypeID,
		Percentage:    percentage,
	}, nil
}

func (h *RateHandler) CreateOverride(c echo.Context) error {
	input, err := h.bindOverride(c)
	if err != nil {
		return err
	}
	override, err := h.usecase.CreateOverride(c.Request().Context(), input)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, renderOverride(override))
}

func (h *RateHandler) UpdateOverride(c echo.Context) error {
	input, err := h.bindOverride(c)
	if err != nil {
		return err
	}
	override, err := h.usecase.UpdateOverride(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, renderOverride(override))
}

func (h *RateHandler) GetOverrideByID(c echo.Context) error {
	override, err := h.usecase.GetOverrideByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, renderOverride(override))
}

func (h *RateHandler) ListOverrides(c echo.Context) error {
	var (
		overrides []*domain.CommissionOverride
		err       error
	)
	switch {
	case c.QueryParam("employeeId") != "":
		overrides, err = h.usecase.ListOverridesByEmployee(c.Request().Context(), c.QueryParam("employeeId"))
	case c.QueryParam("serviceTypeId") != "":
		overrides, err = h.usecase.ListOverridesByServiceType(c.Request().Context(), c.QueryParam("serviceTypeId"))
	default:
		overrides, err = h.usecase.ListOverrides(c.Request().Context())
	}
	if err != nil {
		return toHTTPError(err)
	}
	items := make([]overrideResponse, 0, len(overrides))
	for _, override := range overrides {
		items = append(items, renderOverride(override))
	}
	return c.JSON(http.StatusOK, items)
}

func (h *RateHandler) DeleteOverride(c echo.Context) error {
	if err := h.usecase.DeleteOverride(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RateHandler) UpsertDefault(c echo.Context) error {
	input, err := h.bindDefault(c)
	if err != nil {
		return err
	}
	def, err := h.usecase.UpsertDefault(c.Request().Context(), input)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, renderDefault(def))
}

func (h *RateHandler) UpdateDefault(c echo.Context) error {
	input, err := h.bindDefault(c)
	if err != nil {
		return err
	}
	def, err := h.usecase.UpdateDefault(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, renderDefault(def))
}

func (h *RateHandler) GetDefaultByID(c echo.Context) error {
	def, err := h.usecase.GetDefaultByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, renderDefault(def))
}

func (h *RateHandler) ListDefaults(c echo.Context) error {
	if serviceTypeID := c.QueryParam("serviceTypeId"); serviceTypeID != "" {
		def, err := h.usecase.GetDefaultByServiceType(c.Request().Context(), serviceTypeID)
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, []defaultResponse{renderDefault(def)})
	}
	defaults, err := h.usecase.ListDefaults(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	items := make([]defaultResponse, 0, len(defaults))
	for _, def := range defaults {
		items = append(items, renderDefault(def))
	}
	return c.JSON(http.StatusOK, items)
}

func (h *RateHandler) DeleteDefault(c echo.Context) error {
	if err := h.usecase.DeleteDefault(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ResolveRate reports the percentage in effect for a pair without
// creating anything.
func (h *RateHandler) ResolveRate(c echo.Context) error {
	employeeID := c.QueryParam("employeeId")
	serviceTypeID := c.QueryParam("serviceTypeId")
	if employeeID == "" || serviceTypeID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "employeeId and serviceTypeId are required")
	}

	source, err := h.resolver.Resolve(c.Request().Context(), employeeID, serviceTypeID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, resolvedRateResponse{
		EmployeeID:    employeeID,
		ServiceTypeID: serviceTypeID,
		Kind:          string(source.Kind),
		Percentage:    source.Percentage.String(),
	})
}
