package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
)

func TestOKWithData(t *testing.T) {
	data := map[string]string{"key": "value"}
	resp := OKWithData(data)

	assert.Equal(t, StatusOK, resp.Status)
	assert.Equal(t, data, resp.Data)
}

func TestError(t *testing.T) {
	msg := "something went wrong"
	resp := Error(msg)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, msg, resp.Error)
}

func TestValidationError(t *testing.T) {
	type TestStruct struct {
		Action string `validate:"required,oneof=payment extension"`
		Months int    `validate:"gte=1,lte=12"`
	}

	v := validator.New()
	ts := TestStruct{
		Action: "",
		Months: 13,
	}

	err := v.Struct(ts)
	assert.Error(t, err)

	validationErrors := err.(validator.ValidationErrors)
	resp := ValidationError(validationErrors)

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Action is a required field")
	assert.Contains(t, resp.Error, "field Months must be at most 12")
}

func TestValidationErrorOneof(t *testing.T) {
	type TestStruct struct {
		Method string `validate:"oneof=cash card transfer"`
	}

	v := validator.New()
	err := v.Struct(TestStruct{Method: "bitcoin"})
	assert.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Contains(t, resp.Error, "field Method must be one of: cash card transfer")
}
