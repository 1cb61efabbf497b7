package validator

import (
	"bengkel/shared/constant"
	"bengkel/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// datefilterPattern accepts a full calendar date or any prefix of one that
// ends on a component boundary: "2024", "2024-05" and "2024-05-17" are all
// valid. Filtering is a string-prefix test, so partial dates are first-class.
var datefilterPattern = regexp.MustCompile(`^\d{4}(-\d{2}(-\d{2})?)?$`)

func registerCalendarDateValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.BookingDateFormat, value)

	return err == nil
}

func registerDateFilterValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return datefilterPattern.MatchString(value)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("calendardate", registerCalendarDateValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("datefilter", registerDateFilterValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.ValidationFromError(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.Validation(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.Validation(msg) //nolint:wrapcheck
	}

	return nil
}
