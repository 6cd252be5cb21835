package services

import (
	"fmt"

	"github.com/selim/gradebook/internal/pkg/apperrors"
	"github.com/shopspring/decimal"
)

// Precision limits of the NUMERIC columns.
const (
	creditsMaxDigits int32 = 3
	creditsScale     int32 = 1

	scoreMaxDigits int32 = 5
	scoreScale     int32 = 2
)

// validateDecimalPrecision checks that value fits NUMERIC(maxDigits, scale):
// no more than scale decimal places, and no more than maxDigits-scale digits
// before the decimal point.
func validateDecimalPrecision(value decimal.Decimal, maxDigits, scale int32, field string) error {
	if !value.Equal(value.Round(scale)) {
		return apperrors.NewValidationError(
			fmt.Sprintf("ensure that there are no more than %d decimal places", scale), field)
	}
	if value.Abs().GreaterThanOrEqual(decimal.New(1, maxDigits-scale)) {
		return apperrors.NewValidationError(
			fmt.Sprintf("ensure that there are no more than %d digits in total", maxDigits), field)
	}
	return nil
}
