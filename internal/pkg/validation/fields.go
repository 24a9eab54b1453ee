package validation

import (
	"github.com/unicatalog/course-catalog/internal/pkg/apperrors"
)

// Field validators are pure functions: same input, same result, no I/O.
// Each takes the field path under which a failure should be reported, so the
// same validator serves top-level fields and nested list elements.

// CourseNumber validates a course number such as "COMS4153W". The value must
// match the full pattern; partial matches and lowercase input fail.
func CourseNumber(field, value string) *apperrors.FieldError {
	ok := NewStringValidation(value).
		WithPattern(CompiledPatterns.CourseNumber).
		Validate()
	if !ok {
		return apperrors.NewFormatError(field, CourseNumberPattern, "must be a valid course number (e.g. COMS4153W)")
	}
	return nil
}

// UNI validates a university personal identifier such as "dj2390". Only the
// format is checked; whether the person exists is not this layer's concern.
func UNI(field, value string) *apperrors.FieldError {
	ok := NewStringValidation(value).
		WithPattern(CompiledPatterns.UNI).
		Validate()
	if !ok {
		return apperrors.NewFormatError(field, UNIPattern, "must be a valid UNI (e.g. dj2390)")
	}
	return nil
}

// Email validates an email address against the configured pattern
func Email(field, value string) *apperrors.FieldError {
	ok := NewStringValidation(value).
		WithPattern(CompiledPatterns.Email).
		Validate()
	if !ok {
		return apperrors.NewFormatError(field, EmailPattern, "must be a valid email address")
	}
	return nil
}

// NonEmptyString validates that a free-form required field carries a value
func NonEmptyString(field, value string) *apperrors.FieldError {
	if !NewStringValidation(value).Validate() {
		return apperrors.NewFormatError(field, "non-empty", "must not be empty")
	}
	return nil
}
