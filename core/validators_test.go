package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identSample struct {
	UserID string `json:"userId" validate:"required,ident"`
}

func TestInitValidators(t *testing.T) {
	validate := validator.New()
	translator := NewTranslator()
	InitValidators(validate, translator)

	tests := []struct {
		name    string
		userID  string
		wantMsg string
	}{
		{name: "valid", userID: "user_1-a"},
		{name: "missing", userID: "", wantMsg: "this field is required"},
		{name: "spaces", userID: "user 1", wantMsg: "only letters, digits, dashes and underscores are allowed"},
		{name: "slash", userID: "../etc", wantMsg: "only letters, digits, dashes and underscores are allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(identSample{UserID: tt.userID})
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var vErrs validator.ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			require.Len(t, vErrs, 1)
			assert.Equal(t, "userId", vErrs[0].Field())
			assert.Equal(t, tt.wantMsg, vErrs[0].Translate(translator))
		})
	}
}

type moneySample struct {
	Amount float64 `json:"amount" validate:"money"`
}

func TestInitValidators_money(t *testing.T) {
	validate := validator.New()
	translator := NewTranslator()
	InitValidators(validate, translator)

	for _, ok := range []float64{0, 199, 199.5, 499.99} {
		assert.NoError(t, validate.Struct(moneySample{Amount: ok}), ok)
	}

	err := validate.Struct(moneySample{Amount: 199.999})
	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Equal(t, "at most 2 decimal places are allowed", vErrs[0].Translate(translator))
}
