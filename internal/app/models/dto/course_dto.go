package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/unicatalog/course-catalog/internal/pkg/apperrors"
	"github.com/unicatalog/course-catalog/internal/pkg/identity"
	"github.com/unicatalog/course-catalog/internal/pkg/validation"
)

// CourseBase carries the fields shared by every course representation
type CourseBase struct {
	CourseNumber string `json:"course_number"`
	Name         string `json:"name"`
	ProfessorUNI string `json:"professor_uni"`
	Credits      int    `json:"credits"`
	Strength     int    `json:"strength"`
}

// validate checks every base constraint, collecting all failures.
// Credits and strength carry no range constraint at this layer.
func (c *CourseBase) validate() *apperrors.ValidationError {
	verr := apperrors.NewValidationError()
	verr.Add(validation.CourseNumber("course_number", c.CourseNumber))
	verr.Add(validation.NonEmptyString("name", c.Name))
	verr.Add(validation.UNI("professor_uni", c.ProfessorUNI))
	return verr
}

// Validate re-checks the base constraints on an already decoded course.
// Validation never mutates the receiver, so repeating it yields the same
// result.
func (c *CourseBase) Validate() error {
	return c.validate().ErrOrNil()
}

// parseCourseBase decodes and validates the base fields from raw members.
// A member that fails to decode is reported once and not format-checked
// again. Field paths are reported under prefix so course elements nested in
// a department keep their list index.
func parseCourseBase(fields map[string]json.RawMessage, prefix string, verr *apperrors.ValidationError) CourseBase {
	var base CourseBase

	if value, ok := stringField(fields, prefix, "course_number", verr); ok {
		base.CourseNumber = value
		verr.Add(validation.CourseNumber(prefix+"course_number", value))
	}
	if value, ok := stringField(fields, prefix, "name", verr); ok {
		base.Name = value
		verr.Add(validation.NonEmptyString(prefix+"name", value))
	}
	if value, ok := stringField(fields, prefix, "professor_uni", verr); ok {
		base.ProfessorUNI = value
		verr.Add(validation.UNI(prefix+"professor_uni", value))
	}
	if value, ok := intField(fields, prefix, "credits", verr); ok {
		base.Credits = value
	}
	if value, ok := intField(fields, prefix, "strength", verr); ok {
		base.Strength = value
	}

	return base
}

// CourseCreate is the client payload for creating a course
type CourseCreate struct {
	CourseBase
}

// ParseCourseCreate decodes an untrusted payload into a validated creation
// record. All five base fields are required. On failure every failing field
// is reported together; no record is produced unless every constraint passes.
func ParseCourseCreate(data []byte) (*CourseCreate, error) {
	fields, verr := decodePayload(data)
	if verr != nil {
		return nil, verr
	}

	verr = apperrors.NewValidationError()
	base := parseCourseBase(fields, "", verr)
	if verr.HasErrors() {
		return nil, verr
	}

	return &CourseCreate{CourseBase: base}, nil
}

// CourseUpdate is a partial patch for a course. A nil field requests no
// change. There is no way to clear a field: every base field is required on
// the stored record, so an update can only replace values.
type CourseUpdate struct {
	CourseNumber *string `json:"course_number,omitempty"`
	Name         *string `json:"name,omitempty"`
	ProfessorUNI *string `json:"professor_uni,omitempty"`
	Credits      *int    `json:"credits,omitempty"`
	Strength     *int    `json:"strength,omitempty"`
}

// ParseCourseUpdate decodes an untrusted partial payload. Every field is
// optional; any field that is present must satisfy the same constraint it
// has on creation.
func ParseCourseUpdate(data []byte) (*CourseUpdate, error) {
	fields, verr := decodePayload(data)
	if verr != nil {
		return nil, verr
	}

	verr = apperrors.NewValidationError()
	update := &CourseUpdate{}

	if value, ok := optionalString(fields, "course_number", verr); ok {
		verr.Add(validation.CourseNumber("course_number", value))
		update.CourseNumber = &value
	}
	if value, ok := optionalString(fields, "name", verr); ok {
		verr.Add(validation.NonEmptyString("name", value))
		update.Name = &value
	}
	if value, ok := optionalString(fields, "professor_uni", verr); ok {
		verr.Add(validation.UNI("professor_uni", value))
		update.ProfessorUNI = &value
	}
	if value, ok := optionalInt(fields, "credits", verr); ok {
		update.Credits = &value
	}
	if value, ok := optionalInt(fields, "strength", verr); ok {
		update.Strength = &value
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return update, nil
}

// Validate re-checks every present field of the patch
func (u *CourseUpdate) Validate() error {
	verr := apperrors.NewValidationError()
	if u.CourseNumber != nil {
		verr.Add(validation.CourseNumber("course_number", *u.CourseNumber))
	}
	if u.Name != nil {
		verr.Add(validation.NonEmptyString("name", *u.Name))
	}
	if u.ProfessorUNI != nil {
		verr.Add(validation.UNI("professor_uni", *u.ProfessorUNI))
	}
	return verr.ErrOrNil()
}

// CourseRead is the server representation of a stored course returned to
// clients. Clients never supply the identifier or the timestamps.
type CourseRead struct {
	ID uuid.UUID `json:"id"`
	CourseBase
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCourseRead attaches fresh server-owned fields to a validated course at
// first creation. The identifier is generated exactly once here and is never
// regenerated; created_at and updated_at start equal.
func NewCourseRead(base CourseBase, gen identity.Generator) *CourseRead {
	now := gen.Now()
	return &CourseRead{
		ID:         gen.NewID(),
		CourseBase: base,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// MaterializeCourseRead reassembles the read view of an already stored
// course. Pure assembly: the stored fields passed the create or update
// validation upstream and are trusted here, not re-checked.
func MaterializeCourseRead(base CourseBase, id uuid.UUID, createdAt, updatedAt time.Time) *CourseRead {
	return &CourseRead{
		ID:         id,
		CourseBase: base,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
