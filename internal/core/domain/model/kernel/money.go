package kernel

import (
	"fmt"

	"oms/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ZeroRate means no discount.
	ZeroRate = decimal.Zero
	// FullRate is the upper bound of a discount rate.
	FullRate = decimal.NewFromInt(1)
)

// ValidateAmount rejects negative monetary amounts.
func ValidateAmount(paramName string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is negative", amount))
	}
	return nil
}

// ValidateRate checks that a discount rate lies in [0, 1].
func ValidateRate(rate decimal.Decimal) error {
	if rate.LessThan(ZeroRate) || rate.GreaterThan(FullRate) {
		return errs.NewValueIsOutOfRangeError("discount rate", rate.String(), ZeroRate.String(), FullRate.String())
	}
	return nil
}

// ApplyRate returns amount × (1 − rate).
func ApplyRate(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(FullRate.Sub(rate))
}
