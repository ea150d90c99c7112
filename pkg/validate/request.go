package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	must(v.RegisterValidation("notblank", validators.NotBlank))
	must(v.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil && d.IsPositive()
	}))
	must(v.RegisterValidation("msisdn", func(fl validator.FieldLevel) bool {
		_, ok := NormalizePhone(fl.Field().String())
		return ok
	}))
	must(v.RegisterValidation("luhn", func(fl validator.FieldLevel) bool {
		return IsLuna(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// RequestError lists every field of a request payload that failed its
// `validate` tag.
type RequestError struct {
	Fields []FieldError
}

type FieldError struct {
	Field   string
	Tag     string
	Message string
}

func (e *RequestError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Struct checks s against its `validate` tags. Field names in the returned
// *RequestError are the JSON names.
func Struct(s interface{}) error {
	err := requestValidator.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	reqErr := &RequestError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		reqErr.Fields = append(reqErr.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return reqErr
}

// Email reports whether s is a bare email address.
func Email(s string) bool {
	return requestValidator.Var(s, "required,email") == nil
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "required_if":
		return field + " is required for this " + strings.ToLower(strings.Fields(fe.Param())[0])
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return field + " must be at least " + fe.Param() + " characters"
		}
		return field + " must have at least " + fe.Param() + " entries"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "len":
		return field + " must be " + fe.Param() + " characters long"
	case "numeric":
		return field + " must contain only digits"
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "gte":
		return field + " must be greater than or equal to " + fe.Param()
	case "lte":
		return field + " must be less than or equal to " + fe.Param()
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "positive_decimal":
		return field + " must be a positive number"
	case "msisdn":
		return field + " must be a Nigerian mobile number"
	case "luhn":
		return field + " is not a valid code"
	default:
		return field + " is invalid"
	}
}
