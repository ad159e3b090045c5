package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/consign/internal/domain"
)

// newValidator returns a validator that reports JSON field names and knows
// about decimal quantities and fulfillment group labels.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names for error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Validate decimals as floats so gte/gt work on quantities.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("fulfillment_group", validateFulfillmentGroup)

	return v
}

func validateFulfillmentGroup(fl validator.FieldLevel) bool {
	_, err := domain.ParseFulfillmentGroup(fl.Field().String())
	return err == nil
}

// validateRequest runs struct validation and converts failures into an
// EINVALID error listing every offending field.
func validateRequest(v *validator.Validate, op string, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return domain.WrapError(err, domain.EINVALID, op, "invalid request")
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[fieldPath(e)] = formatValidationError(e)
	}

	first := validationErrors[0]
	return &fieldError{
		err: &domain.Error{
			Code:    domain.EINVALID,
			Op:      op,
			Message: fmt.Sprintf("%s %s", fieldPath(first), formatValidationError(first)),
		},
		fields: fields,
	}
}

// fieldPath drops the top-level struct name from the namespace,
// e.g. "items[0].sku".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "uuid":
		return "must be a valid UUID"
	case "fulfillment_group":
		return "must be a fulfillment group label (D1-D7) or name"
	default:
		return "is invalid"
	}
}
