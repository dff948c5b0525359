package model

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their JSON names so errors match the API shape
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = validate.RegisterValidation("countrycode", func(fl validator.FieldLevel) bool {
			return IsCountryCode(fl.Field().String())
		})
	})
	return validate
}

// IsCountryCode reports whether code looks like a 2-3 letter uppercase country code.
func IsCountryCode(code string) bool {
	if len(code) < 2 || len(code) > 3 {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// Validate checks the retreat record before it enters the catalog
func (r *Retreat) Validate() []FieldError {
	err := validatorInstance().Struct(r)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "retreat", Message: err.Error()}}
	}

	errors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		errors = append(errors, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return errors
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "countrycode":
		return fmt.Sprintf("%s must be a 2-3 letter uppercase country code", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
