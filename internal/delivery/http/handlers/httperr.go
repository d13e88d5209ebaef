package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comissio/commission-service/internal/domain"
)

// toHTTPError maps domain errors onto response codes. Anything outside the
// taxonomy is a storage-level failure: logged, surfaced as a bare 500.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrServiceTypeNotFound),
		errors.Is(err, domain.ErrPerformedServiceNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrRateNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrCommissionRuleNotFound),
		errors.Is(err, domain.ErrNoPendingCommissions),
		errors.Is(err, domain.ErrNonPositivePrice),
		errors.Is(err, domain.ErrNegativePercentage),
		errors.Is(err, domain.ErrServiceDateInFuture):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrDuplicateServiceTypeName),
		errors.Is(err, domain.ErrDuplicateEmployee),
		errors.Is(err, domain.ErrDuplicateOverride),
		errors.Is(err, domain.ErrDuplicateDefault),
		errors.Is(err, domain.ErrInvalidStateTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	default:
		slog.Error("unexpected error", "error", err.Error())
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
