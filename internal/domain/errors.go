package domain

import "errors"

var (
	ErrEmployeeNotFound         = errors.New("employee not found")
	ErrServiceTypeNotFound      = errors.New("service type not found")
	ErrPerformedServiceNotFound = errors.New("performed service not found")
	ErrPaymentNotFound          = errors.New("commission payment not found")
	ErrRateNotFound             = errors.New("commission rate not found")
	ErrCommissionRuleNotFound   = errors.New("no commission rule for employee and service type")

	ErrDuplicateServiceTypeName = errors.New("service type name already in use")
	ErrDuplicateEmployee        = errors.New("employee already registered for this user")
	ErrDuplicateOverride        = errors.New("commission override already exists for this employee and service type")
	ErrDuplicateDefault         = errors.New("commission default already exists for this service type")

	ErrInvalidStateTransition = errors.New("invalid service state transition")
	ErrNoPendingCommissions   = errors.New("no pending commissions found for employee")

	ErrNonPositivePrice     = errors.New("price must be greater than zero")
	ErrNegativePercentage   = errors.New("percentage must not be negative")
	ErrServiceDateInFuture  = errors.New("service date must not be in the future")
)
