package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"wearecars/shared/failure"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "bad request",
			err:  failure.BadRequestFromString("bad input"),
			want: http.StatusBadRequest,
		},
		{
			name: "not found",
			err:  failure.NotFound("booking not found"),
			want: http.StatusNotFound,
		},
		{
			name: "unauthorized",
			err:  failure.Unauthorized("missing token"),
			want: http.StatusUnauthorized,
		},
		{
			name: "wrapped failure",
			err:  fmt.Errorf("outer: %w", failure.Conflict("duplicate")),
			want: http.StatusConflict,
		},
		{
			name: "plain error defaults to internal",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestValidation(t *testing.T) {
	err := failure.Validation(map[string]string{
		"customer_age":   "customer_age must be greater than or equal to 18",
		"number_of_days": "number_of_days must be greater than or equal to 1",
	})

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	fields := failure.GetFields(err)
	assert.Len(t, fields, 2)
	assert.Contains(t, fields, "customer_age")
	assert.Contains(t, fields, "number_of_days")

	assert.Nil(t, failure.GetFields(errors.New("boom")))
}
