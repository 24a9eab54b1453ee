package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unicatalog/course-catalog/internal/pkg/apperrors"
	"github.com/unicatalog/course-catalog/internal/pkg/identity"
)

func TestParseDepartmentCreate(t *testing.T) {
	payload := `{
		"department_code": "IEOR",
		"name": "Industrial Engineering and Operations Research",
		"head_of_department": "sm1231",
		"courses_list": [
			{"course_number":"IEOR4121W","name":"Marketing Analytics","professor_uni":"dd39","credits":3,"strength":50},
			{"course_number":"IEOR4123W","name":"Data Analysis","professor_uni":"ce19","credits":3,"strength":120}
		],
		"email": "info@ieor.columbia.edu"
	}`

	department, err := ParseDepartmentCreate([]byte(payload))
	require.NoError(t, err)
	require.NotNil(t, department)

	assert.Equal(t, "IEOR", department.DepartmentCode)
	assert.Equal(t, "sm1231", department.HeadOfDepartment)
	assert.Equal(t, "info@ieor.columbia.edu", department.Email)
	require.Len(t, department.CoursesList, 2)
	assert.Equal(t, "IEOR4121W", department.CoursesList[0].CourseNumber)
	assert.Equal(t, "IEOR4123W", department.CoursesList[1].CourseNumber)

	assert.NoError(t, department.Validate())
}

func TestParseDepartmentCreateEmptyCoursesList(t *testing.T) {
	payload := `{
		"department_code": "COMS",
		"name": "Computer Science",
		"head_of_department": "sf2303",
		"courses_list": [],
		"email": "cs@columbia.edu"
	}`

	department, err := ParseDepartmentCreate([]byte(payload))
	require.NoError(t, err)
	assert.Empty(t, department.CoursesList)
}

func TestParseDepartmentCreateIndexedCourseErrors(t *testing.T) {
	payload := `{
		"department_code": "COMS",
		"name": "Computer Science",
		"head_of_department": "sf2303",
		"courses_list": [
			{"course_number":"COMS4153W","name":"Cloud Computing","professor_uni":"dj2390","credits":3,"strength":120},
			{"course_number":"cs101","name":"Bad Course","professor_uni":"dj2390","credits":3,"strength":60}
		],
		"email": "cs@columbia.edu"
	}`

	department, err := ParseDepartmentCreate([]byte(payload))
	assert.Nil(t, department)

	verr := &apperrors.ValidationError{}
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"courses_list[1].course_number"}, verr.Fields())
}

func TestParseDepartmentCreateBadEmail(t *testing.T) {
	payload := `{
		"department_code": "COMS",
		"name": "Computer Science",
		"head_of_department": "sf2303",
		"courses_list": [],
		"email": "not-an-email"
	}`

	department, err := ParseDepartmentCreate([]byte(payload))
	assert.Nil(t, department)

	verr := &apperrors.ValidationError{}
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "email", verr.Errors[0].Field)
	assert.ErrorIs(t, verr.Errors[0], apperrors.ErrInvalidFormat)
}

func TestParseDepartmentCreateMissingCoursesList(t *testing.T) {
	payload := `{
		"department_code": "COMS",
		"name": "Computer Science",
		"head_of_department": "sf2303",
		"email": "cs@columbia.edu"
	}`

	department, err := ParseDepartmentCreate([]byte(payload))
	assert.Nil(t, department)

	verr := &apperrors.ValidationError{}
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"courses_list"}, verr.Fields())
}

func TestParseDepartmentCreateDuplicateCourseNumbersAllowed(t *testing.T) {
	// deduplication is a product decision made elsewhere, not a constraint
	// of this layer
	payload := `{
		"department_code": "COMS",
		"name": "Computer Science",
		"head_of_department": "sf2303",
		"courses_list": [
			{"course_number":"COMS4153W","name":"Cloud Computing","professor_uni":"dj2390","credits":3,"strength":120},
			{"course_number":"COMS4153W","name":"Cloud Computing II","professor_uni":"dj2390","credits":3,"strength":120}
		],
		"email": "cs@columbia.edu"
	}`

	department, err := ParseDepartmentCreate([]byte(payload))
	require.NoError(t, err)
	require.Len(t, department.CoursesList, 2)
}

func TestParseDepartmentCreateNonObjectCourseElement(t *testing.T) {
	payload := `{
		"department_code": "COMS",
		"name": "Computer Science",
		"head_of_department": "sf2303",
		"courses_list": ["COMS4153W"],
		"email": "cs@columbia.edu"
	}`

	department, err := ParseDepartmentCreate([]byte(payload))
	assert.Nil(t, department)

	verr := &apperrors.ValidationError{}
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"courses_list[0]"}, verr.Fields())
}

func TestParseDepartmentUpdatePartial(t *testing.T) {
	update, err := ParseDepartmentUpdate([]byte(`{"name": "Industry and Engineering"}`))
	require.NoError(t, err)

	require.NotNil(t, update.Name)
	assert.Equal(t, "Industry and Engineering", *update.Name)
	assert.Nil(t, update.DepartmentCode)
	assert.Nil(t, update.HeadOfDepartment)
	assert.Nil(t, update.CoursesList)
	assert.Nil(t, update.Email)

	assert.NoError(t, update.Validate())
}

func TestParseDepartmentUpdateValidatesPresentFields(t *testing.T) {
	payload := `{
		"head_of_department": "AJ9843",
		"email": "not-an-email",
		"courses_list": [
			{"course_number":"cs101","name":"Bad Course","professor_uni":"dj2390","credits":3,"strength":60}
		]
	}`

	update, err := ParseDepartmentUpdate([]byte(payload))
	assert.Nil(t, update)

	verr := &apperrors.ValidationError{}
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"head_of_department",
		"courses_list[0].course_number",
		"email",
	}, verr.Fields())
}

func TestParseDepartmentUpdateEmptyCoursesListIsAChange(t *testing.T) {
	// an explicitly empty list replaces the stored one; an absent list
	// leaves it alone
	update, err := ParseDepartmentUpdate([]byte(`{"courses_list": []}`))
	require.NoError(t, err)
	require.NotNil(t, update.CoursesList)
	assert.Empty(t, update.CoursesList)
}

func TestNewDepartmentRead(t *testing.T) {
	id := uuid.MustParse("99999999-9999-4999-8999-999999999999")
	at := time.Date(2025, 1, 15, 10, 20, 30, 0, time.UTC)

	base := DepartmentBase{
		DepartmentCode:   "COMS",
		Name:             "Computer Science",
		HeadOfDepartment: "sf2303",
		CoursesList:      []CourseBase{},
		Email:            "cs@columbia.edu",
	}
	read := NewDepartmentRead(base, identity.Fixed(id, at))

	assert.Equal(t, id, read.ID)
	assert.Equal(t, base, read.DepartmentBase)
	assert.Equal(t, at, read.CreatedAt)
	assert.Equal(t, at, read.UpdatedAt)
}

func TestDepartmentReadJSONRoundTrip(t *testing.T) {
	base := DepartmentBase{
		DepartmentCode:   "IEOR",
		Name:             "Industrial Engineering and Operations Research",
		HeadOfDepartment: "sm1231",
		CoursesList: []CourseBase{
			{CourseNumber: "IEOR4121W", Name: "Marketing Analytics", ProfessorUNI: "dd39", Credits: 3, Strength: 50},
		},
		Email: "info@ieor.columbia.edu",
	}
	read := NewDepartmentRead(base, identity.Default())

	data, err := json.Marshal(read)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"department_code":"IEOR"`)
	assert.Contains(t, string(data), `"courses_list":[{"course_number":"IEOR4121W"`)

	var decoded DepartmentRead
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *read, decoded)
}

func TestMaterializeDepartmentRead(t *testing.T) {
	id := uuid.New()
	created := time.Date(2025, 1, 15, 10, 20, 30, 0, time.UTC)
	updated := created.Add(26 * time.Hour)

	base := DepartmentBase{
		DepartmentCode:   "COMS",
		Name:             "Computer Science",
		HeadOfDepartment: "sf2303",
		CoursesList:      []CourseBase{},
		Email:            "cs@columbia.edu",
	}
	read := MaterializeDepartmentRead(base, id, created, updated)

	assert.Equal(t, id, read.ID)
	assert.False(t, read.UpdatedAt.Before(read.CreatedAt))
}
