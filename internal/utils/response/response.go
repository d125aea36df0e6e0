package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/inventario-app/inventario-api/internal/errors"
)

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error *ErrorResponse `json:"error"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(data)
}

// Error renders an AppError with its mapped status code. Unknown errors
// collapse to a generic 500.
func Error(w http.ResponseWriter, err error) {

	var statusCode int
	var errorResponse *ErrorResponse

	if appErr, ok := errors.IsAppError(err); ok {
		statusCode = appErr.StatusCode
		errorResponse = &ErrorResponse{
			Code:    appErr.Code,
			Message: appErr.Message,
		}

		if appErr.Detail != "" {
			errorResponse.Message = appErr.Detail
		}

	} else {

		statusCode = http.StatusInternalServerError
		errorResponse = &ErrorResponse{
			Code:    errors.ErrCodeInternal,
			Message: "An unexpected error occured",
		}

	}

	WriteJson(w, statusCode, ErrorEnvelope{Error: errorResponse})
}

// MissingFieldsError reports form fields that were absent from the request.
func MissingFieldsError(w http.ResponseWriter, fields []string) {

	errMsgs := make([]string, 0, len(fields))

	for _, field := range fields {
		errMsgs = append(errMsgs, fmt.Sprintf("Field %s is required", field))
	}

	errorResponse := &ErrorResponse{
		Code:    errors.ErrCodeValidation,
		Message: "Validation failed",
		Details: errMsgs,
	}

	WriteJson(w, http.StatusBadRequest, ErrorEnvelope{Error: errorResponse})
}

// ValidationError renders the list of failed presence checks.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {

	var errMsgs []string

	for _, err := range errs {

		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Field %s is required", err.Field())
		default:
			message = fmt.Sprintf("Field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param())
		}

		errMsgs = append(errMsgs, message)

	}

	errorResponse := &ErrorResponse{
		Code:    errors.ErrCodeValidation,
		Message: "Validation failed",
		Details: errMsgs,
	}

	WriteJson(w, http.StatusBadRequest, ErrorEnvelope{Error: errorResponse})
}
