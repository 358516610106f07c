package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledge-engine/recommender/internal/validation"
)

type sampleRequest struct {
	Count  int     `validate:"min=1,max=10"`
	Rating float64 `validate:"gte=0,lte=10"`
	Name   string  `validate:"required"`
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.NoError(t, validation.ValidateStruct(&sampleRequest{Count: 3, Rating: 8.1, Name: "x"}))
}

func TestValidateStruct_Invalid(t *testing.T) {
	err := validation.ValidateStruct(&sampleRequest{Count: 0, Rating: 11})
	require.Error(t, err)

	var verr *validation.RequestValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 3)

	assert.Equal(t, "Count", verr.Fields[0].Field)
	assert.Equal(t, "count must be at least 1", verr.Fields[0].Message)
	assert.Equal(t, "rating must be at most 10", verr.Fields[1].Message)
	assert.Equal(t, "name is required", verr.Fields[2].Message)
	assert.Contains(t, err.Error(), "; ")
}

func TestValidator_Singleton(t *testing.T) {
	assert.Same(t, validation.Validator(), validation.Validator())
}
