package catalogdto

import "github.com/shopspring/decimal"

type ServiceTypeInput struct {
	Name      string
	BasePrice decimal.Decimal
}

type OverrideInput struct {
	EmployeeID    string
	ServiceTypeID string
	Percentage    decimal.Decimal
}

type DefaultInput struct {
	ServiceTypeID string
	Percentage    decimal.Decimal
}
