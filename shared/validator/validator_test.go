package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"wearecars/shared/failure"
	"wearecars/shared/validator"
)

type sampleRequest struct {
	Name    string `json:"name"    validate:"required"`
	Age     int    `json:"age"     validate:"gte=18"`
	License string `json:"license" validate:"required,oneof=yes no,license"`
}

func TestValidateStructAccumulatesAllFieldErrors(t *testing.T) {
	req := sampleRequest{
		Name:    "",
		Age:     16,
		License: "no",
	}

	err := validator.ValidateStruct(&req)
	assert.Error(t, err)

	fields := failure.GetFields(err)
	assert.Len(t, fields, 3)
	assert.Equal(t, "name is required", fields["name"])
	assert.Equal(t, "age must be greater than or equal to 18", fields["age"])
	assert.Equal(t, "Customer must have a valid driving license to book a car", fields["license"])
}

func TestValidateStructValid(t *testing.T) {
	req := sampleRequest{
		Name:    "Ada",
		Age:     30,
		License: "yes",
	}

	assert.NoError(t, validator.ValidateStruct(&req))
}

func TestValidateDecodesBody(t *testing.T) {
	body := strings.NewReader(`{"name":"Ada","age":30,"license":"yes"}`)

	req := sampleRequest{}
	assert.NoError(t, validator.Validate(body, &req))
	assert.Equal(t, "Ada", req.Name)

	bad := strings.NewReader(`{"name":`)
	assert.Error(t, validator.Validate(bad, &req))
}
