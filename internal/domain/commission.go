package domain

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// ComputeCommission applies a percentage to a price with two-stage half-up
// rounding: the raw price*percentage/100 product is rounded to four decimal
// places before the final monetary rounding to two. Collapsing the stages
// into one diverges whenever the product's fifth decimal digit pushes the
// fourth across a rounding boundary, so both stages are kept.
func ComputeCommission(price, percentage decimal.Decimal) (decimal.Decimal, error) {
	if !price.IsPositive() {
		return decimal.Zero, ErrNonPositivePrice
	}
	if percentage.IsNegative() {
		return decimal.Zero, ErrNegativePercentage
	}
	raw := price.Mul(percentage).Div(oneHundred)
	return raw.Round(4).Round(2), nil
}
