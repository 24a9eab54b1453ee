package validation

import (
	"fmt"
	"regexp"
)

// Validation rule patterns
var (
	// Course number pattern - 4 letter department abbreviation, 4 digit
	// catalog number and a section letter, e.g. COMS4153W. Input must
	// already be uppercase; no normalization is applied.
	CourseNumberPattern = `^[A-Z]{4}\d{4}[A-Z]$`

	// UNI pattern - lowercase initials followed by digits, e.g. dj2390
	UNIPattern = `^[a-z]{2,3}\d{1,4}$`

	// Email validation pattern - configurable. Case-insensitive, any TLD
	// length; local-part@domain with a dotted domain is the minimum bar.
	EmailPattern = `(?i)^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	CourseNumber *regexp.Regexp
	UNI          *regexp.Regexp
	Email        *regexp.Regexp
}{
	CourseNumber: regexp.MustCompile(CourseNumberPattern),
	UNI:          regexp.MustCompile(UNIPattern),
	Email:        regexp.MustCompile(EmailPattern),
}

// SetEmailPattern replaces the email pattern at configuration time. Must not
// be called once validation has started; validators assume fixed patterns.
func SetEmailPattern(pattern string) error {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid email pattern: %w", err)
	}
	EmailPattern = pattern
	CompiledPatterns.Email = compiled
	return nil
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	// Check if required
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	// Check min length
	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	// Check max length
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	// Check pattern
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
