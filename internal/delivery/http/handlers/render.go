package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comissio/commission-service/internal/domain"
)

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return date, nil
}

func intQueryParam(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

type performedServiceResponse struct {
	ID               string    `json:"id"`
	EmployeeID       string    `json:"employeeId"`
	ServiceTypeID    string    `json:"serviceTypeId"`
	Price            string    `json:"price"`
	CommissionAmount string    `json:"commissionAmount"`
	ServiceDate      string    `json:"serviceDate"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func renderPerformedService(service *domain.PerformedService) performedServiceResponse {
	return performedServiceResponse{
		ID:               service.ID,
		EmployeeID:       service.EmployeeID,
		ServiceTypeID:    service.ServiceTypeID,
		Price:            service.Price.StringFixed(2),
		CommissionAmount: service.CommissionAmount.StringFixed(2),
		ServiceDate:      service.ServiceDate.Format(dateLayout),
		Status:           string(service.Status),
		CreatedAt:        service.CreatedAt,
		UpdatedAt:        service.UpdatedAt,
	}
}

type paymentResponse struct {
	ID                 string    `json:"id"`
	EmployeeID         string    `json:"employeeId"`
	PerformedServiceID string    `json:"performedServiceId"`
	AmountPaid         string    `json:"amountPaid"`
	Status             string    `json:"status"`
	PaymentDate        time.Time `json:"paymentDate"`
	CreatedAt          time.Time `json:"createdAt"`
}

func renderPayment(payment *domain.CommissionPayment) paymentResponse {
	return paymentResponse{
		ID:                 payment.ID,
		EmployeeID:         payment.EmployeeID,
		PerformedServiceID: payment.PerformedServiceID,
		AmountPaid:         payment.AmountPaid.StringFixed(2),
		Status:             string(payment.Status),
		PaymentDate:        payment.PaymentDate,
		CreatedAt:          payment.CreatedAt,
	}
}

type pageResponse struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
