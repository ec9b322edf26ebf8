package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"saira_acad/internal/apperrors"
)

var (
	registerOnce sync.Once
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// RegisterValidators installs the custom binding rules and makes validation
// errors report json field names. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
	})
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// bindError turns a gin binding failure into a validation error with per-field detail.
func bindError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apperrors.Validation("Invalid request body")
	}

	fields := make([]apperrors.FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, apperrors.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return apperrors.Validation(fields[0].Message, fields...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Valid email is required"
	case "phone10":
		return "Phone number must be 10 digits"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid"
	}
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("Invalid id", apperrors.FieldError{Field: "id", Message: "id must be a positive integer"})
	}
	return uint(id), nil
}

// validEmail checks an address that was bound without a format rule, such as
// an optional email where "" means clear.
func validEmail(field, value string) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok || v.Var(value, "email") == nil {
		return nil
	}
	return apperrors.Validation("Valid email is required", apperrors.FieldError{Field: field, Message: "Valid email is required"})
}

// normalize lower-cases and trims emails and login names.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// requireText rejects values that are blank once trimmed; binding's required only
// catches the empty string.
func requireText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		msg := field + " is required"
		return "", apperrors.Validation(msg, apperrors.FieldError{Field: field, Message: msg})
	}
	return v, nil
}
