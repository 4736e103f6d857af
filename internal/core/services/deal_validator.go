package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/apperrors"
	"github.com/SscSPs/fx_deals_warehouse/internal/dto"
	"github.com/SscSPs/fx_deals_warehouse/internal/utils/currency"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// shapeValidator re-runs the DTO binding tags outside gin. The batch path
// decodes items without binding-level validation so that a malformed item
// becomes that item's outcome instead of rejecting the whole batch; this
// validator is what checks those items. It reports field names as they
// appear on the wire.
var shapeValidator = newShapeValidator()

func newShapeValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateDealShape applies the DTO field-shape constraints (presence,
// length bounds, 3-letter uppercase codes) and reports all failing fields in
// one message.
func ValidateDealShape(req dto.CreateDealRequest) error {
	err := shapeValidator.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperrors.NewValidationFailedError("invalid deal data")
	}
	parts := make([]string, len(validationErrs))
	for i, fe := range validationErrs {
		parts[i] = fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag())
	}
	return apperrors.NewValidationFailedError("invalid deal data: " + strings.Join(parts, "; "))
}

// Amount precision bounds for a deal: at most 15 integer digits and 4
// fraction digits (NUMERIC(19,4) in the schema).
const (
	maxAmountIntegerDigits  = 15
	maxAmountFractionDigits = 4
)

// amountMagnitudeLimit is 10^15; any amount at or above it needs more than
// 15 integer digits.
var amountMagnitudeLimit = decimal.New(1, maxAmountIntegerDigits)

// ValidateDeal applies the business rules to a structurally well-formed deal
// request. Checks short-circuit on the first violation so the caller gets a
// specific message. The function is pure: same input and clock, same result.
//
// Field-shape validation (presence, lengths, 3-letter codes) is the binding
// layer's job and is assumed to have passed already.
func ValidateDeal(req dto.CreateDealRequest, now time.Time) error {
	if !currency.IsValidCode(req.FromCurrency) || !currency.IsValidCode(req.ToCurrency) {
		return apperrors.NewValidationFailedError("invalid ISO currency code provided")
	}
	if req.FromCurrency == req.ToCurrency {
		return apperrors.NewValidationFailedError("from and to currencies must be different for an FX deal")
	}
	if req.Timestamp.After(now) {
		return apperrors.NewValidationFailedError("deal timestamp cannot be in the future")
	}
	if !req.Amount.IsPositive() {
		return apperrors.NewValidationFailedError("deal amount must be greater than 0")
	}
	if exceedsPrecision(req.Amount) {
		return apperrors.NewValidationFailedError("deal amount must have at most 15 integer digits and 4 decimal places")
	}
	return nil
}

// exceedsPrecision reports whether amount has more than the allowed integer
// or fraction digits. The integer bound is a magnitude comparison rather
// than a digit count so exponent-notation inputs such as 1e18 (coefficient 1,
// exponent 18) are caught too.
func exceedsPrecision(amount decimal.Decimal) bool {
	if amount.Exponent() < -maxAmountFractionDigits {
		return true
	}
	return amount.Abs().Cmp(amountMagnitudeLimit) >= 0
}
