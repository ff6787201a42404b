package utils

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	upiPattern        = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

// NewValidator returns a validator that reports JSON field names and knows
// the storefront's payment rules.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	_ = validate.RegisterValidation("upi", func(fl validator.FieldLevel) bool {
		return upiPattern.MatchString(fl.Field().String())
	})

	validate.RegisterStructValidation(paymentMethodRules, models.PaymentMethod{})

	return validate
}

// NormalizeCardNumber drops the spaces users type between digit groups.
func NormalizeCardNumber(number string) string {
	return strings.ReplaceAll(number, " ", "")
}

func paymentMethodRules(sl validator.StructLevel) {
	method, ok := sl.Current().Interface().(models.PaymentMethod)
	if !ok {
		return
	}

	switch {
	case method.Type.IsCard():
		if method.CardNumber == "" {
			sl.ReportError(method.CardNumber, "cardNumber", "CardNumber", "required", "")
		} else if !cardNumberPattern.MatchString(NormalizeCardNumber(method.CardNumber)) {
			sl.ReportError(method.CardNumber, "cardNumber", "CardNumber", "card_number", "")
		}

		if strings.TrimSpace(method.NameOnCard) == "" {
			sl.ReportError(method.NameOnCard, "nameOnCard", "NameOnCard", "required", "")
		}

		if method.ExpiryDate == "" {
			sl.ReportError(method.ExpiryDate, "expiryDate", "ExpiryDate", "required", "")
		} else if !expiryPattern.MatchString(method.ExpiryDate) {
			sl.ReportError(method.ExpiryDate, "expiryDate", "ExpiryDate", "expiry", "")
		}

		if method.CVV == "" {
			sl.ReportError(method.CVV, "cvv", "CVV", "required", "")
		} else if !cvvPattern.MatchString(method.CVV) {
			sl.ReportError(method.CVV, "cvv", "CVV", "cvv", "")
		}

	case method.Type == models.PaymentUPI:
		// the format itself is checked by the upi field tag
		if method.UPIID == "" {
			sl.ReportError(method.UPIID, "upiId", "UPIID", "required", "")
		}
	}
}
