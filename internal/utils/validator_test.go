package utils

import (
	"strings"
	"testing"

	"recipe-book/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrorsMessages(t *testing.T) {
	InitValidator()

	req := domain.SaveRecipeRequest{
		Title:    strings.Repeat("x", 201),
		ImageURL: "not a url",
	}
	req.Sanitize()
	err := Validate.Struct(req)
	require.Error(t, err)

	byField := map[string]string{}
	for _, fe := range FieldErrors(err) {
		byField[fe.Field] = fe.Message
	}

	assert.Equal(t, "Ensure this field has no more than 200 characters.", byField["title"])
	assert.Equal(t, "Enter a valid URL.", byField["image_url"])
	assert.Equal(t, "This field is required.", byField["ingredients"])
	assert.Equal(t, "This field is required.", byField["steps"])
}

func TestFieldErrorsRequiredTitle(t *testing.T) {
	InitValidator()

	req := domain.SaveRecipeRequest{
		Title:       "   ",
		Ingredients: "x",
		Steps:       "y",
	}
	req.Sanitize()
	err := Validate.Struct(req)
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "title", fields[0].Field)
	assert.Equal(t, "This field is required.", fields[0].Message)
}
