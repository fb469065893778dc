package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidators installs the decimal-aware validators on gin's
// binding engine. Must run once before the router starts serving.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("nonneg", validateNonNegativeDecimal)
	}
}

// validateNonNegativeDecimal accepts decimal.Decimal fields >= 0. Non-decimal
// fields fail the check so a mistagged field surfaces immediately.
func validateNonNegativeDecimal(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return !v.IsNegative()
	default:
		return false
	}
}
