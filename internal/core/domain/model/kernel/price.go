package kernel

import (
	"errors"
	"math"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const priceScale = 2

var (
	ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice")

	minPrice = decimal.Zero
	maxPrice = decimal.NewFromInt(1_000_000)
)

// Price is a non-negative amount with exactly two decimal places, capped at
// 1,000,000. Inputs are rounded half-up to cents, so NewPriceFromFloat(10.005)
// holds 10.01. Order totals, line subtotals and product prices all use it.
//
// Example:
//
//	unit, _ := kernel.NewPriceFromString("10.00")
//	subtotal, err := unit.Mul(3) // 30.00
type Price struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice validates amount and rounds it to cents. Negative amounts are
// rejected before rounding, so -0.001 fails instead of becoming 0.00.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsOutOfRangeError("price", amount.String(), minPrice.String(), maxPrice.String())
	}

	rounded := amount.Round(priceScale)
	if rounded.GreaterThan(maxPrice) {
		return Price{}, errs.NewValueIsOutOfRangeError("price", amount.String(), minPrice.String(), maxPrice.String())
	}

	return Price{amount: rounded, guard: guard.NewConstructorGuard()}, nil
}

// NewPriceFromFloat converts a float, rejecting NaN and infinities.
func NewPriceFromFloat(amount float64) (Price, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", errors.New("must be a finite number"))
	}
	return NewPrice(decimal.NewFromFloat(amount))
}

// NewPriceFromString parses a decimal literal such as "19.99".
func NewPriceFromString(amount string) (Price, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(parsed)
}

// ZeroPrice returns 0.00.
func ZeroPrice() Price {
	return Price{amount: decimal.Zero.Round(priceScale), guard: guard.NewConstructorGuard()}
}

// Amount returns the rounded decimal value.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Float64 returns the amount as a float for JSON rendering.
func (p Price) Float64() float64 {
	f, _ := p.amount.Float64()
	return f
}

// String formats the amount with two decimals, e.g. "30.00".
func (p Price) String() string {
	return p.amount.StringFixed(priceScale)
}

// Add returns p + other, failing when the sum exceeds the maximum.
func (p Price) Add(other Price) (Price, error) {
	return NewPrice(p.amount.Add(other.amount))
}

// Mul returns p multiplied by quantity, which must not be negative.
func (p Price) Mul(quantity int) (Price, error) {
	if quantity < 0 {
		return Price{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt32)
	}
	return NewPrice(p.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
