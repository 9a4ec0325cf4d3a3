package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/reachronakofficial756/excelSort/pkg/logger"
	"github.com/reachronakofficial756/excelSort/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type SearchValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewSearchValidator(log *logger.Logger) *SearchValidator {
	return &SearchValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// Validate checks a search request before normalization. Canonical keys are
// digit strings, so a query without a single digit can never match and is
// rejected as invalid rather than looked up.
func (v *SearchValidator) Validate(req *model.SearchRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	if !strings.ContainsFunc(req.Mobile, unicode.IsDigit) {
		return ValidationErrors{{
			Field:   "Mobile",
			Message: "mobile must contain at least one digit",
		}}
	}

	return nil
}

func (v *SearchValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
