package core

import (
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// custom validation tags & texts
	identTag   = "ident"
	identText  = "only letters, digits, dashes and underscores are allowed"
	identRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	moneyTag  = "money"
	moneyText = "at most 2 decimal places are allowed"

	requiredTag     = "required"
	requiredWithTag = "required_with"
	requiredText    = "this field is required"
)

// NewTranslator returns the english translator used for validation messages.
func NewTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	custom := []struct {
		tag  string
		fn   validator.Func
		text string
	}{
		{identTag, identValidation, identText},
		{moneyTag, moneyValidation, moneyText},
	}
	for _, c := range custom {
		_ = validate.RegisterValidation(c.tag, c.fn)
		RegisterCustomTranslation(validate, translator, c.tag, c.text)
	}

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
	RegisterCustomTranslation(validate, translator, requiredWithTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Custom Global Validators

// identValidation only allows identifiers made of letters, digits, dashes and underscores.
func identValidation(fl validator.FieldLevel) bool {
	return identRegex.MatchString(fl.Field().String())
}

// moneyValidation only allows amounts expressible in paise (2 decimals).
func moneyValidation(fl validator.FieldLevel) bool {
	cents := fl.Field().Float() * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}
