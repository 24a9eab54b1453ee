package dto

import (
	"errors"
	"time"

	"github.com/unicatalog/course-catalog/internal/pkg/apperrors"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeMissingField     ErrorCode = "VAL_002"
	ErrorCodeInvalidFormat    ErrorCode = "VAL_003"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

// Severity levels
const (
	ErrorSeverityWarning ErrorSeverity = "WARNING"
	ErrorSeverityError   ErrorSeverity = "ERROR"
)

// ErrorDetail represents detailed error information. Field carries the full
// field path, list indices included, so clients can point at the exact value
// that failed.
type ErrorDetail struct {
	Code     ErrorCode     `json:"code" example:"VAL_003"`
	Message  string        `json:"message" example:"must be a valid course number (e.g. COMS4153W)"`
	Field    string        `json:"field,omitempty" example:"courses_list[1].course_number"`
	Rule     string        `json:"rule,omitempty"`
	Severity ErrorSeverity `json:"severity" example:"ERROR"`
	Details  interface{}   `json:"details,omitempty"`
}

// ErrorResponse represents the standard error response structure a transport
// collaborator serializes into a 4xx body
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2025-01-15T10:20:30Z"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:     code,
		Message:  message,
		Severity: ErrorSeverityError,
	}
}

// WithField adds a field path to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationErrorResponse maps an aggregated validation error to the wire
// shape. Field errors keep their original order.
func NewValidationErrorResponse(verr *apperrors.ValidationError) *ErrorResponse {
	details := make([]ErrorDetail, 0, len(verr.Errors))
	for _, fieldErr := range verr.Errors {
		details = append(details, ErrorDetail{
			Code:     errorCodeFor(fieldErr),
			Message:  fieldErr.Message,
			Field:    fieldErr.Field,
			Rule:     fieldErr.Rule,
			Severity: ErrorSeverityError,
		})
	}

	errorDetail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed").
		WithDetails(details)
	return NewErrorResponse(errorDetail)
}

// errorCodeFor selects the wire code for a single field error
func errorCodeFor(err *apperrors.FieldError) ErrorCode {
	if errors.Is(err, apperrors.ErrMissingField) {
		return ErrorCodeMissingField
	}
	return ErrorCodeInvalidFormat
}
