package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/unicatalog/course-catalog/internal/pkg/apperrors"
	"github.com/unicatalog/course-catalog/internal/pkg/identity"
	"github.com/unicatalog/course-catalog/internal/pkg/validation"
)

// DepartmentBase carries the fields shared by every department
// representation. CoursesList elements are course base shapes; duplicate
// course numbers in the list are not rejected at this layer.
type DepartmentBase struct {
	DepartmentCode   string       `json:"department_code"`
	Name             string       `json:"name"`
	HeadOfDepartment string       `json:"head_of_department"`
	CoursesList      []CourseBase `json:"courses_list"`
	Email            string       `json:"email"`
}

// validate checks every base constraint. Each course element is validated
// independently and its failures are reported under its list index, e.g.
// "courses_list[1].course_number". An empty list is valid.
func (d *DepartmentBase) validate() *apperrors.ValidationError {
	verr := apperrors.NewValidationError()
	verr.Add(validation.NonEmptyString("department_code", d.DepartmentCode))
	verr.Add(validation.NonEmptyString("name", d.Name))
	verr.Add(validation.UNI("head_of_department", d.HeadOfDepartment))
	for i := range d.CoursesList {
		verr.Merge(fmt.Sprintf("courses_list[%d].", i), d.CoursesList[i].validate())
	}
	verr.Add(validation.Email("email", d.Email))
	return verr
}

// Validate re-checks the base constraints on an already decoded department
func (d *DepartmentBase) Validate() error {
	return d.validate().ErrOrNil()
}

// parseDepartmentBase decodes and validates the base fields from raw members
func parseDepartmentBase(fields map[string]json.RawMessage, verr *apperrors.ValidationError) DepartmentBase {
	var base DepartmentBase

	if value, ok := stringField(fields, "", "department_code", verr); ok {
		base.DepartmentCode = value
		verr.Add(validation.NonEmptyString("department_code", value))
	}
	if value, ok := stringField(fields, "", "name", verr); ok {
		base.Name = value
		verr.Add(validation.NonEmptyString("name", value))
	}
	if value, ok := stringField(fields, "", "head_of_department", verr); ok {
		base.HeadOfDepartment = value
		verr.Add(validation.UNI("head_of_department", value))
	}
	if raw, ok := fields["courses_list"]; !ok {
		verr.Add(apperrors.NewMissingFieldError("courses_list"))
	} else {
		base.CoursesList = parseCoursesList(raw, verr)
	}
	if value, ok := stringField(fields, "", "email", verr); ok {
		base.Email = value
		verr.Add(validation.Email("email", value))
	}

	return base
}

// parseCoursesList decodes the course elements one by one so a bad element
// reports its own indexed errors without hiding its siblings.
func parseCoursesList(raw json.RawMessage, verr *apperrors.ValidationError) []CourseBase {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		verr.Add(apperrors.NewFormatError("courses_list", "array", "must be an array of courses"))
		return nil
	}

	courses := make([]CourseBase, 0, len(elements))
	for i, element := range elements {
		path := fmt.Sprintf("courses_list[%d]", i)

		courseFields := map[string]json.RawMessage{}
		if err := json.Unmarshal(element, &courseFields); err != nil {
			verr.Add(apperrors.NewFormatError(path, "object", "must be a course object"))
			continue
		}
		courses = append(courses, parseCourseBase(courseFields, path+".", verr))
	}
	return courses
}

// DepartmentCreate is the client payload for creating a department
type DepartmentCreate struct {
	DepartmentBase
}

// ParseDepartmentCreate decodes an untrusted payload into a validated
// creation record. All base fields are required, courses_list included;
// a department with zero courses is created with an empty list.
func ParseDepartmentCreate(data []byte) (*DepartmentCreate, error) {
	fields, verr := decodePayload(data)
	if verr != nil {
		return nil, verr
	}

	verr = apperrors.NewValidationError()
	base := parseDepartmentBase(fields, verr)
	if verr.HasErrors() {
		return nil, verr
	}

	return &DepartmentCreate{DepartmentBase: base}, nil
}

// DepartmentUpdate is a partial patch for a department. A nil field requests
// no change; a present courses_list replaces the stored list wholesale.
type DepartmentUpdate struct {
	DepartmentCode   *string      `json:"department_code,omitempty"`
	Name             *string      `json:"name,omitempty"`
	HeadOfDepartment *string      `json:"head_of_department,omitempty"`
	CoursesList      []CourseBase `json:"courses_list,omitempty"`
	Email            *string      `json:"email,omitempty"`
}

// ParseDepartmentUpdate decodes an untrusted partial payload. Every field is
// optional; any field that is present must satisfy the same constraint it
// has on creation, course elements included.
func ParseDepartmentUpdate(data []byte) (*DepartmentUpdate, error) {
	fields, verr := decodePayload(data)
	if verr != nil {
		return nil, verr
	}

	verr = apperrors.NewValidationError()
	update := &DepartmentUpdate{}

	if value, ok := optionalString(fields, "department_code", verr); ok {
		verr.Add(validation.NonEmptyString("department_code", value))
		update.DepartmentCode = &value
	}
	if value, ok := optionalString(fields, "name", verr); ok {
		verr.Add(validation.NonEmptyString("name", value))
		update.Name = &value
	}
	if value, ok := optionalString(fields, "head_of_department", verr); ok {
		verr.Add(validation.UNI("head_of_department", value))
		update.HeadOfDepartment = &value
	}
	if raw, ok := fields["courses_list"]; ok {
		update.CoursesList = parseCoursesList(raw, verr)
	}
	if value, ok := optionalString(fields, "email", verr); ok {
		verr.Add(validation.Email("email", value))
		update.Email = &value
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return update, nil
}

// Validate re-checks every present field of the patch
func (u *DepartmentUpdate) Validate() error {
	verr := apperrors.NewValidationError()
	if u.DepartmentCode != nil {
		verr.Add(validation.NonEmptyString("department_code", *u.DepartmentCode))
	}
	if u.Name != nil {
		verr.Add(validation.NonEmptyString("name", *u.Name))
	}
	if u.HeadOfDepartment != nil {
		verr.Add(validation.UNI("head_of_department", *u.HeadOfDepartment))
	}
	for i := range u.CoursesList {
		verr.Merge(fmt.Sprintf("courses_list[%d].", i), u.CoursesList[i].validate())
	}
	if u.Email != nil {
		verr.Add(validation.Email("email", *u.Email))
	}
	return verr.ErrOrNil()
}

// DepartmentRead is the server representation of a stored department
// returned to clients
type DepartmentRead struct {
	ID uuid.UUID `json:"id"`
	DepartmentBase
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDepartmentRead attaches fresh server-owned fields to a validated
// department at first creation
func NewDepartmentRead(base DepartmentBase, gen identity.Generator) *DepartmentRead {
	now := gen.Now()
	return &DepartmentRead{
		ID:             gen.NewID(),
		DepartmentBase: base,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// MaterializeDepartmentRead reassembles the read view of an already stored
// department. Pure assembly, upstream validation is trusted.
func MaterializeDepartmentRead(base DepartmentBase, id uuid.UUID, createdAt, updatedAt time.Time) *DepartmentRead {
	return &DepartmentRead{
		ID:             id,
		DepartmentBase: base,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
