package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

func initValidator() (*validator.Validate, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	// Paths in errors use the file keys ("num.currency.min_fraction_digits").
	vld.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			return toSnake(field.Name)
		}

		return name
	})

	if err := vld.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		_, err := language.Parse(fl.Field().String())

		return err == nil
	}); err != nil {
		return nil, fmt.Errorf("register 'locale': %w", err)
	}

	if err := vld.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		_, err := currency.ParseISO(fl.Field().String())

		return err == nil
	}); err != nil {
		return nil, fmt.Errorf("register 'currency_code': %w", err)
	}

	return vld, nil
}

func getValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate, errValidate = initValidator()
	})

	return validate, errValidate
}

func validateStruct(c Config) error {
	vld, err := getValidator()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := vld.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return formatValidationError(validationErrors[0])
		}

		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

var validationErrorFormatters = map[string]func(path string, value any, param string) error{
	"locale": func(path string, value any, _ string) error {
		return fmt.Errorf("%w: %s %q is not a BCP 47 tag", ErrInvalidConfig, path, value)
	},
	"currency_code": func(path string, value any, _ string) error {
		return fmt.Errorf("%w: %s %q is not an ISO 4217 code", ErrInvalidConfig, path, value)
	},
	"min": func(path string, value any, param string) error {
		return fmt.Errorf("%w: %s out of range: %v (min %s)", ErrInvalidConfig, path, value, param)
	},
	"max": func(path string, value any, param string) error {
		return fmt.Errorf("%w: %s out of range: %v (max %s)", ErrInvalidConfig, path, value, param)
	},
	"ltefield": func(path string, value any, param string) error {
		return fmt.Errorf("%w: %s %v exceeds %s", ErrInvalidConfig, path, value, toSnake(param))
	},
}

func formatValidationError(fe validator.FieldError) error {
	// Namespace starts with the root type name, which is not part of the file path.
	_, path, _ := strings.Cut(fe.Namespace(), ".")

	if format, ok := validationErrorFormatters[fe.Tag()]; ok {
		return format(path, fe.Value(), fe.Param())
	}

	return fmt.Errorf("%w: %s failed %q", ErrInvalidConfig, path, fe.Tag())
}

func toSnake(name string) string {
	var b strings.Builder

	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}

		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}
