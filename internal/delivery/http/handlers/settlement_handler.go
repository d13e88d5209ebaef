package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comissio/commission-service/internal/delivery/http/middleware"
	settlementdto "github.com/comissio/commission-service/internal/usecase/dto/settlement"
	"github.com/comissio/commission-service/internal/usecase/settlement"
)

type SettlementHandler struct {
	usecase settlement.SettlementUsecase
}

func NewSettlementHandler(uc settlement.SettlementUsecase) *SettlementHandler {
	return &SettlementHandler{usecase: uc}
}

type settleBatchRequest struct {
	EmployeeID      string `json:"employeeId" validate:"required,uuid4"`
	UpToServiceDate string `json:"upToServiceDate"`
}

type batchReceiptResponse struct {
	EmployeeID           string    `json:"employeeId"`
	EmployeeName         string    `json:"employeeName"`
	Reference            string    `json:"reference"`
	CommissionsPaidCount int       `json:"commissionsPaidCount"`
	TotalPaid            string    `json:"totalPaid"`
	BatchProcessTime     time.Time `json:"batchProcessTime"`
	PaidServiceIDs       []string  `json:"paidServiceIds"`
}

func (h *SettlementHandler) SettleBatch(c echo.Context) error {
	var req settleBatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cutoff, err := parseOptionalDate(req.UpToServiceDate)
	if err != nil {
		return err
	}

	receipt, err := h.usecase.SettleBatch(c.Request().Context(), settlementdto.SettleBatchInput{
		EmployeeID:      req.EmployeeID,
		UpToServiceDate: cutoff,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, batchReceiptResponse{
		EmployeeID:           receipt.EmployeeID,
		EmployeeName:         receipt.EmployeeName,
		Reference:            receipt.Reference,
		CommissionsPaidCount: receipt.CommissionsPaidCount,
		TotalPaid:            receipt.TotalPaid.StringFixed(2),
		BatchProcessTime:     receipt.BatchProcessTime,
		PaidServiceIDs:       receipt.PaidServiceIDs,
	})
}

func (h *SettlementHandler) GetPaymentByID(c echo.Context) error {
	payment, err := h.usecase.GetPaymentByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	if claims := middleware.ClaimsFrom(c); claims != nil && claims.Role == middleware.RoleEmployee &&
		payment.EmployeeID != claims.EmployeeID {
		return echo.NewHTTPError(http.StatusForbidden, "access denied")
	}
	return c.JSON(http.StatusOK, renderPayment(payment))
}

func (h *SettlementHandler) ListPayments(c echo.Context) error {
	input := settlementdto.ListPaymentsInput{
		EmployeeID: c.QueryParam("employeeId"),
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

	if claims := middleware.ClaimsFrom(c); claims != nil && claims.Role == middleware.RoleEmployee {
		input.EmployeeID = claims.EmployeeID
	}

	page, err := h.usecase.ListPayments(c.Request().Context(), input)
	if err != nil {
		return toHTTPError(err)
	}

	items := make([]paymentResponse, 0, len(page.Payments))
	for _, payment := range page.Payments {
		items = append(items, renderPayment(payment))
	}
	return c.JSON(http.StatusOK, pageResponse{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}
