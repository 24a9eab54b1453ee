package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidFormat    = errors.New("invalid format")
)

// FieldError represents a single field failing its constraint. Field holds the
// full path of the failing field, including list indices for nested elements
// (e.g. "courses_list[1].course_number").
type FieldError struct {
	Field   string
	Rule    string
	Message string
	err     error
}

// NewFormatError creates a field error for a value that fails its format or
// type constraint. Rule carries the expected pattern or rule name.
func NewFormatError(field, rule, message string) *FieldError {
	return &FieldError{
		Field:   field,
		Rule:    rule,
		Message: message,
		err:     ErrInvalidFormat,
	}
}

// NewMissingFieldError creates a field error for a required field that is
// absent from the payload.
func NewMissingFieldError(field string) *FieldError {
	return &FieldError{
		Field:   field,
		Message: "is required",
		err:     ErrMissingField,
	}
}

// Error implements the error interface
func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

// Unwrap implements errors.Unwrap interface
func (e *FieldError) Unwrap() error {
	return e.err
}

// WithPrefix returns a copy of the error with its field path nested under the
// given prefix. Used when a nested element's errors are lifted into the parent
// record's error list.
func (e *FieldError) WithPrefix(prefix string) *FieldError {
	return &FieldError{
		Field:   prefix + e.Field,
		Rule:    e.Rule,
		Message: e.Message,
		err:     e.err,
	}
}

// ValidationError aggregates every field error discovered during a single
// validation pass. Errors keep the order in which the fields were checked.
type ValidationError struct {
	Errors []*FieldError
}

// NewValidationError creates an empty validation error container
func NewValidationError() *ValidationError {
	return &ValidationError{
		Errors: make([]*FieldError, 0),
	}
}

// Add appends a field error to the container. Nil errors are ignored so
// validator results can be added unconditionally.
func (v *ValidationError) Add(err *FieldError) *ValidationError {
	if err != nil {
		v.Errors = append(v.Errors, err)
	}
	return v
}

// Merge lifts every error from another container into this one, prefixing
// each field path. Used for nested course elements inside a department.
func (v *ValidationError) Merge(prefix string, other *ValidationError) *ValidationError {
	if other == nil {
		return v
	}
	for _, err := range other.Errors {
		v.Errors = append(v.Errors, err.WithPrefix(prefix))
	}
	return v
}

// HasErrors checks if there are any field errors
func (v *ValidationError) HasErrors() bool {
	return len(v.Errors) > 0
}

// ErrOrNil returns the container as an error, or nil when no field failed.
// Callers return this directly so a clean validation yields a nil error.
func (v *ValidationError) ErrOrNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	if !v.HasErrors() {
		return ErrValidationFailed.Error()
	}
	messages := make([]string, 0, len(v.Errors))
	for _, err := range v.Errors {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed.Error(), strings.Join(messages, "; "))
}

// Unwrap implements errors.Unwrap interface
func (v *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Fields returns the ordered field paths of all collected errors
func (v *ValidationError) Fields() []string {
	fields := make([]string, 0, len(v.Errors))
	for _, err := range v.Errors {
		fields = append(fields, err.Field)
	}
	return fields
}
