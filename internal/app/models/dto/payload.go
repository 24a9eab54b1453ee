package dto

import (
	"encoding/json"

	"github.com/unicatalog/course-catalog/internal/pkg/apperrors"
)

// decodePayload splits an untrusted JSON object into its raw members so every
// field can be decoded and validated independently, with no short-circuit on
// the first failure. Members carrying a JSON null are dropped: null and
// absent both mean "not provided".
func decodePayload(data []byte) (map[string]json.RawMessage, *apperrors.ValidationError) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, apperrors.NewValidationError().
			Add(apperrors.NewFormatError("", "object", "payload must be a JSON object"))
	}

	for name, raw := range fields {
		if string(raw) == "null" {
			delete(fields, name)
		}
	}

	return fields, nil
}

// stringField decodes a required string member, reporting a missing-field or
// type error under prefix+name. Returns false when no usable value exists.
func stringField(fields map[string]json.RawMessage, prefix, name string, verr *apperrors.ValidationError) (string, bool) {
	raw, ok := fields[name]
	if !ok {
		verr.Add(apperrors.NewMissingFieldError(prefix + name))
		return "", false
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		verr.Add(apperrors.NewFormatError(prefix+name, "string", "must be a string"))
		return "", false
	}
	return value, true
}

// intField decodes a required integer member
func intField(fields map[string]json.RawMessage, prefix, name string, verr *apperrors.ValidationError) (int, bool) {
	raw, ok := fields[name]
	if !ok {
		verr.Add(apperrors.NewMissingFieldError(prefix + name))
		return 0, false
	}

	var value int
	if err := json.Unmarshal(raw, &value); err != nil {
		verr.Add(apperrors.NewFormatError(prefix+name, "integer", "must be an integer"))
		return 0, false
	}
	return value, true
}

// optionalString decodes an optional string member. An absent member returns
// false with no error recorded; a present member of the wrong type records a
// type error.
func optionalString(fields map[string]json.RawMessage, name string, verr *apperrors.ValidationError) (string, bool) {
	raw, ok := fields[name]
	if !ok {
		return "", false
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		verr.Add(apperrors.NewFormatError(name, "string", "must be a string"))
		return "", false
	}
	return value, true
}

// optionalInt decodes an optional integer member
func optionalInt(fields map[string]json.RawMessage, name string, verr *apperrors.ValidationError) (int, bool) {
	raw, ok := fields[name]
	if !ok {
		return 0, false
	}

	var value int
	if err := json.Unmarshal(raw, &value); err != nil {
		verr.Add(apperrors.NewFormatError(name, "integer", "must be an integer"))
		return 0, false
	}
	return value, true
}
