// Package forms pre-validates request payloads before they are sent, using
// the same rules the service enforces. The server stays authoritative; this
// only gives users feedback without a round trip.
package forms

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jobtrack-dev/jobtrack/internal/cli/client"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// RegisterForm mirrors the service's account registration rules
type RegisterForm struct {
	Name     string `validate:"required,min=2,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=100"`
}

// JobForm mirrors the service's application record rules
type JobForm struct {
	Company     string `validate:"required,max=100"`
	Role        string `validate:"required,oneof=FRONTEND BACKEND FULLSTACK DATA_ANALYST OTHER"`
	Status      string `validate:"required,oneof=APPLIED PHONE_SCREEN INTERVIEW OFFER REJECTED ON_HOLD"`
	Source      string `validate:"required,oneof=LINKEDIN COMPANY_SITE REFERRAL JOB_BOARD RECRUITER OTHER"`
	AppliedDate string `validate:"omitempty,datetime=2006-01-02"`
}

// Validate checks a form and returns a field-keyed error map in the same
// shape the server produces, or nil when the form is valid.
func Validate(form any) client.FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return client.FieldErrors{"form": err.Error()}
	}

	fields := make(client.FieldErrors, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[lowerFirst(fieldErr.Field())] = message(fieldErr)
	}
	return fields
}

func message(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldErr.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fieldErr.Param())
	default:
		return fmt.Sprintf("failed %s validation", fieldErr.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}
