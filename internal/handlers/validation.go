package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/models"
)

const validationTitle = "One or more validation errors occurred."

var validate = newValidator()

// newValidator reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessages overrides the generic message for field.tag pairs.
var fieldMessages = map[string]string{
	"name.required":  "Name is required.",
	"name.max":       "Name cannot exceed 50 characters.",
	"style.required": "Style is required.",
	"style.max":      "Style cannot exceed 50 characters.",
	"healthBase.min": "Base Health must be between 500 and 1500.",
	"healthBase.max": "Base Health must be between 500 and 1500.",
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.StructField())
	case "email":
		return fmt.Sprintf("The %s field is not a valid e-mail address.", fe.StructField())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The field %s must be a string with a maximum length of %s.", fe.StructField(), fe.Param())
		}
		return fmt.Sprintf("The field %s must be at most %s.", fe.StructField(), fe.Param())
	case "min":
		return fmt.Sprintf("The field %s must be at least %s.", fe.StructField(), fe.Param())
	default:
		return fmt.Sprintf("The field %s is invalid.", fe.StructField())
	}
}

// validateStruct returns the failures of v keyed by JSON field name, or nil.
func validateStruct(v any) map[string][]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string][]string{"body": {err.Error()}}
	}

	out := make(map[string][]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = append(out[fe.Field()], fieldMessage(fe))
	}
	return out
}

// writeValidationError writes the 400 problem body used by the fighter endpoints.
func writeValidationError(w http.ResponseWriter, errs map[string][]string) {
	writeJSON(w, http.StatusBadRequest, models.ValidationErrorResponse{
		Title:  validationTitle,
		Status: http.StatusBadRequest,
		Errors: errs,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}
