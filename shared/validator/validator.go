package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"

	"wearecars/shared/failure"
)

var validate *val.Validate

// registerLicenseValidation enforces the legal-eligibility gate: the customer
// must have answered "yes" to holding a driving license. "no" is a
// syntactically valid answer but still fails this rule.
func registerLicenseValidation(field val.FieldLevel) bool {
	answer, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return answer == "yes"
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report fields by their json name so error maps line up with request payloads.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	err := validate.RegisterValidation("license", registerLicenseValidation)
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
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct validates the struct and accumulates every field violation
// into a single failure, so callers can display all problems at once instead
// of fixing them one round trip at a time.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		fields := fieldMessages(err)
		if len(fields) == 0 {
			return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
		}

		return failure.Validation(fields) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		return failure.BadRequestFromString(singleMessage(err)) //nolint:wrapcheck
	}

	return nil
}
